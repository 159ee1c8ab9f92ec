package assessments

import (
	"context"
	"errors"
	"fmt"
	"spectrum-sense-service/internal/app/config"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/screening"
	"spectrum-sense-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	ChildRepository             contracts.ChildRepository
	AssessmentAttemptRepository contracts.AssessmentAttemptRepository
	AssessmentResultRepository  contracts.AssessmentResultRepository
	EventPublisher              contracts.EventPublisher
	LockerService               contracts.LockerService
	Catalog                     *screening.Catalog
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
	now                         func() time.Time
}

// submitLockExpiry bounds how long a crashed submission blocks the attempt.
const submitLockExpiry = 30 * time.Second

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	childRepository contracts.ChildRepository,
	assessmentAttemptRepository contracts.AssessmentAttemptRepository,
	assessmentResultRepository contracts.AssessmentResultRepository,
	eventPublisher contracts.EventPublisher,
	lockerService contracts.LockerService,
	catalog *screening.Catalog,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			ChildRepository:             childRepository,
			AssessmentAttemptRepository: assessmentAttemptRepository,
			AssessmentResultRepository:  assessmentResultRepository,
			EventPublisher:              eventPublisher,
			LockerService:               lockerService,
			Catalog:                     catalog,
			InternalConfig:              internalConfig,
			Log:                         logger,
			now:                         time.Now,
		}
	})
	return assessmentUsecaseInstance
}

// StartAssessment opens an empty attempt for one of the guardian's children.
// The instrument is chosen from the child's age in months on the day the
// attempt starts.
func (uc *assessmentUsecase) StartAssessment(ctx context.Context, session *models.Session, request *requests.StartAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.StartAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, request.ChildID),
	)

	child, err := uc.ChildRepository.FindByIDAndGuardianID(ctx, request.ChildID, session.UserID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.StartAssessment error fetching child",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if child == nil {
		return nil, exceptions.ErrChildNotExist(errors.New("no child with this id for the guardian"))
	}

	now := uc.now()
	ageMonths := utils.AgeInMonths(child.DateOfBirth, now)
	instrument := uc.Catalog.SelectInstrument(ageMonths)

	attempt := &models.AssessmentAttempt{
		AttemptID:    utils.GenerateAttemptID(),
		GuardianID:   session.UserID,
		ChildID:      child.ID,
		ChildName:    child.Name,
		InstrumentID: instrument.ID,
		Answers:      map[string]int{},
		StartedAt:    now,
		ExpiresAt:    now.Add(uc.attemptExpiry()),
	}

	err = uc.AssessmentAttemptRepository.Save(ctx, attempt, uc.attemptExpiry())
	if err != nil {
		uc.Log.Error("assessmentUsecase.StartAssessment error saving attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.StartAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attempt.AttemptID),
		zap.String(constvars.LoggingInstrumentIDKey, instrument.ID),
		zap.Int(constvars.LoggingAgeMonthsKey, ageMonths),
	)
	return uc.toAssessmentResponse(attempt, instrument)
}

func (uc *assessmentUsecase) GetAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.GetAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	attempt, instrument, err := uc.loadAttempt(ctx, session, attemptID)
	if err != nil {
		return nil, err
	}
	return uc.toAssessmentResponse(attempt, instrument)
}

// RecordAnswer stores one answer and rewrites the attempt. A rejected answer
// leaves the stored attempt untouched.
func (uc *assessmentUsecase) RecordAnswer(ctx context.Context, session *models.Session, attemptID string, request *requests.RecordAnswer) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.RecordAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
		zap.String(constvars.LoggingQuestionIDKey, request.QuestionID),
	)

	attempt, instrument, err := uc.loadAttempt(ctx, session, attemptID)
	if err != nil {
		return nil, err
	}

	collector, err := screening.NewCollector(instrument, attempt.ResponseSet())
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}
	err = collector.RecordAnswer(request.QuestionID, *request.Value)
	if err != nil {
		uc.Log.Error("assessmentUsecase.RecordAnswer answer rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromScreeningError(err)
	}
	attempt.SetResponseSet(collector.ResponseSet())

	err = uc.AssessmentAttemptRepository.Save(ctx, attempt, uc.remainingLifetime(attempt))
	if err != nil {
		uc.Log.Error("assessmentUsecase.RecordAnswer error saving attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.RecordAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64(constvars.LoggingCompletionRatioKey, collector.CompletionRatio()),
	)
	return uc.toAssessmentResponse(attempt, instrument)
}

func (uc *assessmentUsecase) GetSection(ctx context.Context, session *models.Session, attemptID string, sectionID int) (*responses.AssessmentSection, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.GetSection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
		zap.Int(constvars.LoggingSectionIDKey, sectionID),
	)

	attempt, instrument, err := uc.loadAttempt(ctx, session, attemptID)
	if err != nil {
		return nil, err
	}

	collector, err := screening.NewCollector(instrument, attempt.ResponseSet())
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}
	questions, err := collector.SectionedView(sectionID)
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}
	passable, err := collector.SectionPassable(sectionID)
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}

	section := &responses.AssessmentSection{
		AttemptID: attempt.AttemptID,
		SectionID: sectionID,
		Questions: make([]responses.AssessmentSectionQuestion, 0, len(questions)),
		Passable:  passable,
		Progress:  collector.Progress(),
	}
	for _, s := range instrument.Sections {
		if s.ID == sectionID {
			section.Title = s.Title
		}
	}
	for _, question := range questions {
		item := responses.AssessmentSectionQuestion{Question: question}
		if value, ok := collector.Answer(question.ID); ok {
			item.Answer = &value
		}
		section.Questions = append(section.Questions, item)
	}
	return section, nil
}

// SubmitAssessment scores a complete attempt, stores the result and ends the
// attempt. Publishing the completion event is best effort.
func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.SubmittedAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeySubmitLockFormat, attemptID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, submitLockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmitInProgress(nil)
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Warn("assessmentUsecase.SubmitAssessment error releasing submit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	attempt, instrument, err := uc.loadAttempt(ctx, session, attemptID)
	if err != nil {
		return nil, err
	}

	scoreResult, err := screening.Score(instrument, attempt.ResponseSet())
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error scoring attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromScreeningError(err)
	}

	result := &models.AssessmentResult{
		GuardianID:        session.UserID,
		ChildID:           attempt.ChildID,
		ChildName:         attempt.ChildName,
		InstrumentID:      scoreResult.InstrumentID,
		InstrumentVersion: scoreResult.InstrumentVersion,
		OverallScore:      scoreResult.OverallScore,
		MaxScale:          scoreResult.MaxScale,
		RiskLevel:         scoreResult.RiskLevel,
		RiskLabel:         scoreResult.RiskLabel,
		RiskAltLabel:      scoreResult.RiskAltLabel,
		CategoryScores:    scoreResult.CategoryScores,
		Indicators:        scoreResult.Indicators,
		CreatedAt:         uc.now(),
	}

	resultID, err := uc.AssessmentResultRepository.CreateAssessmentResult(ctx, result)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error storing result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	result.ID = resultID

	err = uc.AssessmentAttemptRepository.Delete(ctx, attempt.AttemptID)
	if err != nil {
		uc.Log.Warn("assessmentUsecase.SubmitAssessment error deleting finished attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	event := &models.AssessmentCompletedEvent{
		Event:        constvars.EventAssessmentCompleted,
		ResultID:     result.ID,
		GuardianID:   result.GuardianID,
		ChildID:      result.ChildID,
		InstrumentID: result.InstrumentID,
		RiskLevel:    result.RiskLevel,
		RiskLabel:    result.RiskLabel,
		OverallScore: result.OverallScore,
		CompletedAt:  result.CreatedAt,
	}
	err = uc.EventPublisher.PublishAssessmentCompleted(ctx, event)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("assessmentUsecase.SubmitAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, result.ID),
		zap.Int(constvars.LoggingRiskLevelKey, result.RiskLevel),
	)

	resultResponse := responses.NewAssessmentResult(result)
	return &responses.SubmittedAssessment{
		Result:  &resultResponse,
		Chart:   screening.ToChartSeries(instrument, scoreResult),
		Summary: screening.Summarize(scoreResult),
	}, nil
}

func (uc *assessmentUsecase) AbandonAssessment(ctx context.Context, session *models.Session, attemptID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.AbandonAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttemptIDKey, attemptID),
	)

	attempt, err := uc.findOwnedAttempt(ctx, session, attemptID)
	if err != nil {
		return err
	}

	err = uc.AssessmentAttemptRepository.Delete(ctx, attempt.AttemptID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.AbandonAssessment error deleting attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("assessmentUsecase.AbandonAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// findOwnedAttempt treats attempts of other guardians as missing.
func (uc *assessmentUsecase) findOwnedAttempt(ctx context.Context, session *models.Session, attemptID string) (*models.AssessmentAttempt, error) {
	attempt, err := uc.AssessmentAttemptRepository.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.GuardianID != session.UserID {
		return nil, exceptions.ErrAttemptNotExist(errors.New("no live attempt with this id for the guardian"))
	}
	return attempt, nil
}

func (uc *assessmentUsecase) loadAttempt(ctx context.Context, session *models.Session, attemptID string) (*models.AssessmentAttempt, *screening.Instrument, error) {
	attempt, err := uc.findOwnedAttempt(ctx, session, attemptID)
	if err != nil {
		return nil, nil, err
	}
	instrument, err := uc.Catalog.Instrument(attempt.InstrumentID)
	if err != nil {
		return nil, nil, exceptions.FromScreeningError(err)
	}
	return attempt, instrument, nil
}

func (uc *assessmentUsecase) toAssessmentResponse(attempt *models.AssessmentAttempt, instrument *screening.Instrument) (*responses.Assessment, error) {
	collector, err := screening.NewCollector(instrument, attempt.ResponseSet())
	if err != nil {
		return nil, exceptions.FromScreeningError(err)
	}
	return &responses.Assessment{
		AttemptID:  attempt.AttemptID,
		ChildID:    attempt.ChildID,
		ChildName:  attempt.ChildName,
		Instrument: responses.NewInstrumentSummary(instrument),
		Answers:    collector.ResponseSet().Answers,
		Progress:   collector.Progress(),
		StartedAt:  attempt.StartedAt,
		ExpiresAt:  attempt.ExpiresAt,
	}, nil
}

func (uc *assessmentUsecase) attemptExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.Assessment.AttemptExpTimeInMinute) * time.Minute
}

// remainingLifetime is the time left until the deadline set when the attempt
// started.
func (uc *assessmentUsecase) remainingLifetime(attempt *models.AssessmentAttempt) time.Duration {
	if attempt.ExpiresAt.IsZero() {
		return uc.attemptExpiry()
	}
	remaining := attempt.ExpiresAt.Sub(uc.now())
	if remaining < time.Second {
		return time.Second
	}
	return remaining
}
