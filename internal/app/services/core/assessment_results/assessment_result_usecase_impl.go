package assessmentResults

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/screening"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type assessmentResultUsecase struct {
	AssessmentResultRepository contracts.AssessmentResultRepository
	Catalog                    *screening.Catalog
	Log                        *zap.Logger
}

var (
	assessmentResultUsecaseInstance contracts.AssessmentResultUsecase
	onceAssessmentResultUsecase     sync.Once
)

var riskFilterLevels = map[string]int{
	constvars.ResultRiskFilterLow:    1,
	constvars.ResultRiskFilterMedium: 2,
	constvars.ResultRiskFilterHigh:   3,
}

func NewAssessmentResultUsecase(
	assessmentResultRepository contracts.AssessmentResultRepository,
	catalog *screening.Catalog,
	logger *zap.Logger,
) contracts.AssessmentResultUsecase {
	onceAssessmentResultUsecase.Do(func() {
		assessmentResultUsecaseInstance = &assessmentResultUsecase{
			AssessmentResultRepository: assessmentResultRepository,
			Catalog:                    catalog,
			Log:                        logger,
		}
	})
	return assessmentResultUsecaseInstance
}

func (uc *assessmentResultUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAssessmentResults) ([]responses.AssessmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentResultUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	filter := &models.AssessmentResultFilter{
		GuardianID:  session.UserID,
		ChildID:     request.ChildID,
		RiskLevel:   riskFilterLevels[request.Risk],
		Search:      strings.TrimSpace(request.Search),
		OldestFirst: request.Sort == constvars.ResultSortOldest,
	}

	results, err := uc.AssessmentResultRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("assessmentResultUsecase.FindAll error fetching results",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.AssessmentResult, 0, len(results))
	for i := range results {
		response = append(response, responses.NewAssessmentResult(&results[i]))
	}

	uc.Log.Info("assessmentResultUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

// FindByID returns a stored result with its chart rebuilt from the stored
// scores.
func (uc *assessmentResultUsecase) FindByID(ctx context.Context, session *models.Session, resultID string) (*responses.AssessmentResultDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentResultUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	result, err := uc.AssessmentResultRepository.FindByIDAndGuardianID(ctx, resultID, session.UserID)
	if err != nil {
		uc.Log.Error("assessmentResultUsecase.FindByID error fetching result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if result == nil {
		return nil, exceptions.ErrResultNotExist(errors.New("no result with this id for the guardian"))
	}

	// Results outlive catalog changes; without the instrument the chart
	// falls back to hashed category colours.
	instrument, err := uc.Catalog.Instrument(result.InstrumentID)
	if err != nil {
		uc.Log.Warn("assessmentResultUsecase.FindByID instrument no longer in catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstrumentIDKey, result.InstrumentID),
		)
		instrument = nil
	}

	scoreResult := result.ScoreResult()
	uc.Log.Info("assessmentResultUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.AssessmentResultDetail{
		AssessmentResult: responses.NewAssessmentResult(result),
		Chart:            screening.ToChartSeries(instrument, scoreResult),
		Summary:          screening.Summarize(scoreResult),
	}, nil
}
