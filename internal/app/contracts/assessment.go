package contracts

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"time"
)

type AssessmentUsecase interface {
	StartAssessment(ctx context.Context, session *models.Session, request *requests.StartAssessment) (*responses.Assessment, error)
	GetAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.Assessment, error)
	RecordAnswer(ctx context.Context, session *models.Session, attemptID string, request *requests.RecordAnswer) (*responses.Assessment, error)
	GetSection(ctx context.Context, session *models.Session, attemptID string, sectionID int) (*responses.AssessmentSection, error)
	SubmitAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.SubmittedAssessment, error)
	AbandonAssessment(ctx context.Context, session *models.Session, attemptID string) error
}

type AssessmentAttemptRepository interface {
	Save(ctx context.Context, attempt *models.AssessmentAttempt, exp time.Duration) error
	FindByID(ctx context.Context, attemptID string) (*models.AssessmentAttempt, error)
	Delete(ctx context.Context, attemptID string) error
}
