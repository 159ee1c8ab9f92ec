package mocks

import (
	"context"
	"spectrum-sense-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
