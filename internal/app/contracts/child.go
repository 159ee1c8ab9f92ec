package contracts

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
)

type ChildUsecase interface {
	CreateChild(ctx context.Context, session *models.Session, request *requests.CreateChild) (*responses.Child, error)
	ListChildCards(ctx context.Context, session *models.Session) ([]responses.ChildCard, error)
	GetChild(ctx context.Context, session *models.Session, childID string) (*responses.Child, error)
	DeleteChild(ctx context.Context, session *models.Session, childID string) error
}

type ChildRepository interface {
	CreateChild(ctx context.Context, childModel *models.Child) (childID string, err error)
	FindByGuardianID(ctx context.Context, guardianID string) ([]models.Child, error)
	FindByIDAndGuardianID(ctx context.Context, childID, guardianID string) (*models.Child, error)
	DeleteByIDAndGuardianID(ctx context.Context, childID, guardianID string) (deleted bool, err error)
}
