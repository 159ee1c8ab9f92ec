package publisher

import (
	"context"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type assessmentPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewAssessmentPublisher opens a channel on conn and declares the durable
// queue completed assessments are published to.
func NewAssessmentPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &assessmentPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *assessmentPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         event.Event,
		MessageId:    event.ResultID,
		Timestamp:    event.CompletedAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("assessmentPublisher.PublishAssessmentCompleted succeeded",
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String(constvars.LoggingResultIDKey, event.ResultID),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when the message broker is disabled. Events are
// only logged.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	p.Log.Debug("noopPublisher.PublishAssessmentCompleted skipped",
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingResultIDKey, event.ResultID),
	)
	return nil
}
