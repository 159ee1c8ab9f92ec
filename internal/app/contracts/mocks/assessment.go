package mocks

import (
	"context"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) StartAssessment(ctx context.Context, session *models.Session, request *requests.StartAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, session, request)
	assessment, _ := args.Get(0).(*responses.Assessment)
	return assessment, args.Error(1)
}

func (m *MockAssessmentUsecase) GetAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.Assessment, error) {
	args := m.Called(ctx, session, attemptID)
	assessment, _ := args.Get(0).(*responses.Assessment)
	return assessment, args.Error(1)
}

func (m *MockAssessmentUsecase) RecordAnswer(ctx context.Context, session *models.Session, attemptID string, request *requests.RecordAnswer) (*responses.Assessment, error) {
	args := m.Called(ctx, session, attemptID, request)
	assessment, _ := args.Get(0).(*responses.Assessment)
	return assessment, args.Error(1)
}

func (m *MockAssessmentUsecase) GetSection(ctx context.Context, session *models.Session, attemptID string, sectionID int) (*responses.AssessmentSection, error) {
	args := m.Called(ctx, session, attemptID, sectionID)
	section, _ := args.Get(0).(*responses.AssessmentSection)
	return section, args.Error(1)
}

func (m *MockAssessmentUsecase) SubmitAssessment(ctx context.Context, session *models.Session, attemptID string) (*responses.SubmittedAssessment, error) {
	args := m.Called(ctx, session, attemptID)
	submitted, _ := args.Get(0).(*responses.SubmittedAssessment)
	return submitted, args.Error(1)
}

func (m *MockAssessmentUsecase) AbandonAssessment(ctx context.Context, session *models.Session, attemptID string) error {
	args := m.Called(ctx, session, attemptID)
	return args.Error(0)
}

type MockAssessmentAttemptRepository struct {
	mock.Mock
}

func (m *MockAssessmentAttemptRepository) Save(ctx context.Context, attempt *models.AssessmentAttempt, exp time.Duration) error {
	args := m.Called(ctx, attempt, exp)
	return args.Error(0)
}

func (m *MockAssessmentAttemptRepository) FindByID(ctx context.Context, attemptID string) (*models.AssessmentAttempt, error) {
	args := m.Called(ctx, attemptID)
	attempt, _ := args.Get(0).(*models.AssessmentAttempt)
	return attempt, args.Error(1)
}

func (m *MockAssessmentAttemptRepository) Delete(ctx context.Context, attemptID string) error {
	args := m.Called(ctx, attemptID)
	return args.Error(0)
}
