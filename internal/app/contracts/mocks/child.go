package mocks

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockChildUsecase struct {
	mock.Mock
}

func (m *MockChildUsecase) CreateChild(ctx context.Context, session *models.Session, request *requests.CreateChild) (*responses.Child, error) {
	args := m.Called(ctx, session, request)
	child, _ := args.Get(0).(*responses.Child)
	return child, args.Error(1)
}

func (m *MockChildUsecase) ListChildCards(ctx context.Context, session *models.Session) ([]responses.ChildCard, error) {
	args := m.Called(ctx, session)
	cards, _ := args.Get(0).([]responses.ChildCard)
	return cards, args.Error(1)
}

func (m *MockChildUsecase) GetChild(ctx context.Context, session *models.Session, childID string) (*responses.Child, error) {
	args := m.Called(ctx, session, childID)
	child, _ := args.Get(0).(*responses.Child)
	return child, args.Error(1)
}

func (m *MockChildUsecase) DeleteChild(ctx context.Context, session *models.Session, childID string) error {
	args := m.Called(ctx, session, childID)
	return args.Error(0)
}

type MockChildRepository struct {
	mock.Mock
}

func (m *MockChildRepository) CreateChild(ctx context.Context, childModel *models.Child) (string, error) {
	args := m.Called(ctx, childModel)
	return args.String(0), args.Error(1)
}

func (m *MockChildRepository) FindByGuardianID(ctx context.Context, guardianID string) ([]models.Child, error) {
	args := m.Called(ctx, guardianID)
	children, _ := args.Get(0).([]models.Child)
	return children, args.Error(1)
}

func (m *MockChildRepository) FindByIDAndGuardianID(ctx context.Context, childID, guardianID string) (*models.Child, error) {
	args := m.Called(ctx, childID, guardianID)
	child, _ := args.Get(0).(*models.Child)
	return child, args.Error(1)
}

func (m *MockChildRepository) DeleteByIDAndGuardianID(ctx context.Context, childID, guardianID string) (bool, error) {
	args := m.Called(ctx, childID, guardianID)
	return args.Bool(0), args.Error(1)
}
