package contracts

import (
	"context"
	"spectrum-sense-service/internal/app/models"
)

type EventPublisher interface {
	PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error
}
