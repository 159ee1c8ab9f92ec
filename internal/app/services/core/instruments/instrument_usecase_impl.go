package instruments

import (
	"context"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/screening"
	"sync"

	"go.uber.org/zap"
)

type instrumentUsecase struct {
	Catalog *screening.Catalog
	Log     *zap.Logger
}

var (
	instrumentUsecaseInstance contracts.InstrumentUsecase
	onceInstrumentUsecase     sync.Once
)

func NewInstrumentUsecase(catalog *screening.Catalog, logger *zap.Logger) contracts.InstrumentUsecase {
	onceInstrumentUsecase.Do(func() {
		instrumentUsecaseInstance = &instrumentUsecase{
			Catalog: catalog,
			Log:     logger,
		}
	})
	return instrumentUsecaseInstance
}

func (uc *instrumentUsecase) ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error) {
	instruments := uc.Catalog.Instruments()
	summaries := make([]responses.InstrumentSummary, 0, len(instruments))
	for _, instrument := range instruments {
		summaries = append(summaries, responses.NewInstrumentSummary(instrument))
	}
	return summaries, nil
}

func (uc *instrumentUsecase) GetInstrument(ctx context.Context, instrumentID string) (*screening.Instrument, error) {
	instrument, err := uc.Catalog.Instrument(instrumentID)
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}
	return instrument, nil
}

func (uc *instrumentUsecase) SelectInstrument(ctx context.Context, ageMonths int) (*responses.SelectedInstrument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	instrument := uc.Catalog.SelectInstrument(ageMonths)
	uc.Log.Info("instrumentUsecase.SelectInstrument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAgeMonthsKey, ageMonths),
		zap.String(constvars.LoggingInstrumentIDKey, instrument.ID),
	)
	return &responses.SelectedInstrument{
		AgeMonths:  ageMonths,
		Instrument: responses.NewInstrumentSummary(instrument),
	}, nil
}

// ScoreAnswers scores a complete response set without storing anything.
func (uc *instrumentUsecase) ScoreAnswers(ctx context.Context, instrumentID string, request *requests.ScoreAnswers) (*responses.ScoredAnswers, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instrumentUsecase.ScoreAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)

	instrument, err := uc.Catalog.Instrument(instrumentID)
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}

	rs := screening.NewResponseSet(instrument.ID)
	for questionID, value := range request.Answers {
		rs.Answers[questionID] = value
	}

	result, err := screening.Score(instrument, rs)
	if err != nil {
		uc.Log.Error("instrumentUsecase.ScoreAnswers error scoring answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromScreeningError(err)
	}

	uc.Log.Info("instrumentUsecase.ScoreAnswers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRiskLevelKey, result.RiskLevel),
		zap.Float64(constvars.LoggingOverallScoreKey, result.OverallScore),
	)
	return responses.NewScoredAnswers(instrument, result), nil
}
