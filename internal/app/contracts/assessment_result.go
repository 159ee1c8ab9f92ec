package contracts

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
)

type AssessmentResultUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAssessmentResults) ([]responses.AssessmentResult, error)
	FindByID(ctx context.Context, session *models.Session, resultID string) (*responses.AssessmentResultDetail, error)
}

type AssessmentResultRepository interface {
	CreateAssessmentResult(ctx context.Context, resultModel *models.AssessmentResult) (resultID string, err error)
	FindAll(ctx context.Context, filter *models.AssessmentResultFilter) ([]models.AssessmentResult, error)
	FindByIDAndGuardianID(ctx context.Context, resultID, guardianID string) (*models.AssessmentResult, error)
}
