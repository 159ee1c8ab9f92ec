package mocks

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAssessmentResultUsecase struct {
	mock.Mock
}

func (m *MockAssessmentResultUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindAllAssessmentResults) ([]responses.AssessmentResult, error) {
	args := m.Called(ctx, session, request)
	results, _ := args.Get(0).([]responses.AssessmentResult)
	return results, args.Error(1)
}

func (m *MockAssessmentResultUsecase) FindByID(ctx context.Context, session *models.Session, resultID string) (*responses.AssessmentResultDetail, error) {
	args := m.Called(ctx, session, resultID)
	detail, _ := args.Get(0).(*responses.AssessmentResultDetail)
	return detail, args.Error(1)
}

type MockAssessmentResultRepository struct {
	mock.Mock
}

func (m *MockAssessmentResultRepository) CreateAssessmentResult(ctx context.Context, resultModel *models.AssessmentResult) (string, error) {
	args := m.Called(ctx, resultModel)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentResultRepository) FindAll(ctx context.Context, filter *models.AssessmentResultFilter) ([]models.AssessmentResult, error) {
	args := m.Called(ctx, filter)
	results, _ := args.Get(0).([]models.AssessmentResult)
	return results, args.Error(1)
}

func (m *MockAssessmentResultRepository) FindByIDAndGuardianID(ctx context.Context, resultID, guardianID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, resultID, guardianID)
	result, _ := args.Get(0).(*models.AssessmentResult)
	return result, args.Error(1)
}
