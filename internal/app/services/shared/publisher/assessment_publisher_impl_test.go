package publisher

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	exchange string
	key      string
	message  amqp091.Publishing
	err      error
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.message = msg
	return c.err
}

func sampleEvent() *models.AssessmentCompletedEvent {
	return &models.AssessmentCompletedEvent{
		Event:        constvars.EventAssessmentCompleted,
		ResultID:     "665f1c2e9b1d4a0012345678",
		GuardianID:   "665f1c2e9b1d4a0012345600",
		ChildID:      "665f1c2e9b1d4a0012345601",
		InstrumentID: "mchat-r",
		RiskLevel:    3,
		RiskLabel:    "Severe",
		OverallScore: 0.8,
		CompletedAt:  time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestAssessmentPublisher_PublishAssessmentCompleted(t *testing.T) {
	channel := &fakeChannel{}
	p := &assessmentPublisher{Channel: channel, Queue: "assessment_results", Log: zap.NewNop()}

	err := p.PublishAssessmentCompleted(context.Background(), sampleEvent())
	require.NoError(t, err)

	assert.Equal(t, "", channel.exchange)
	assert.Equal(t, "assessment_results", channel.key)
	assert.Equal(t, amqp091.Persistent, channel.message.DeliveryMode)
	assert.Equal(t, constvars.MIMEApplicationJSON, channel.message.ContentType)
	assert.Equal(t, constvars.EventAssessmentCompleted, channel.message.Type)

	var decoded models.AssessmentCompletedEvent
	require.NoError(t, json.Unmarshal(channel.message.Body, &decoded))
	assert.Equal(t, "mchat-r", decoded.InstrumentID)
	assert.Equal(t, 3, decoded.RiskLevel)
}

func TestAssessmentPublisher_PublishError(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	p := &assessmentPublisher{Channel: channel, Queue: "assessment_results", Log: zap.NewNop()}

	err := p.PublishAssessmentCompleted(context.Background(), sampleEvent())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "assessment_results")
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(zap.NewNop())
	assert.NoError(t, p.PublishAssessmentCompleted(context.Background(), sampleEvent()))
}
