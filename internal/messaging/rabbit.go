// internal/messaging/rabbit.go
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"landscapehub/internal/metrics"
)

// amqpChannel is the subset of *amqp.Channel the client uses.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueInspect(name string) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitClient struct {
	conn    *amqp.Connection
	channel amqpChannel
	metrics *metrics.Metrics
	logger  *zap.Logger

	// amqp channels are not safe for concurrent publishes
	mu sync.Mutex
}

func NewRabbitClient(url string, m *metrics.Metrics, logger *zap.Logger) (*RabbitClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return &RabbitClient{
		conn:    conn,
		channel: ch,
		metrics: m,
		logger:  logger,
	}, nil
}

func QueueName(companyID uuid.UUID) string {
	return fmt.Sprintf("company_%s_events", companyID)
}

func DLQName(companyID uuid.UUID) string {
	return fmt.Sprintf("company_%s_dlq", companyID)
}

// DeclareQueue creates the company's durable event queue and its dead-letter queue.
func (r *RabbitClient) DeclareQueue(companyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dlqName := DLQName(companyID)

	// 1. DLQ
	_, err := r.channel.QueueDeclare(
		dlqName,
		true, false, false, false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}

	// 2. Main Queue with DLQ binding
	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}
	_, err = r.channel.QueueDeclare(
		QueueName(companyID),
		true, false, false, false,
		args,
	)
	if err != nil {
		return fmt.Errorf("declare main queue: %w", err)
	}

	r.logger.Debug("Event queues declared", zap.String("company_id", companyID.String()))
	return nil
}

// Publish sends e to its company's queue as a persistent JSON message.
func (r *RabbitClient) Publish(_ context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	queueName := QueueName(e.CompanyID)
	r.mu.Lock()
	err = r.channel.Publish(
		"",        // default exchange
		queueName, // routing key (queue name)
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID.String(),
			Type:         string(e.Type),
			Timestamp:    e.OccurredAt,
			Body:         body,
		},
	)
	r.mu.Unlock()

	if err != nil {
		r.metrics.EventsPublished.WithLabelValues(string(e.Type), "error").Inc()
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}
	r.metrics.EventsPublished.WithLabelValues(string(e.Type), "ok").Inc()
	return nil
}

// Close cleans up connection and channel
func (r *RabbitClient) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

func (r *RabbitClient) UpdateQueueDepth(companyID uuid.UUID) {
	r.mu.Lock()
	q, err := r.channel.QueueInspect(QueueName(companyID))
	r.mu.Unlock()
	if err != nil {
		r.logger.Warn("Failed to inspect event queue",
			zap.String("company_id", companyID.String()), zap.Error(err))
		return
	}

	r.metrics.QueueDepth.WithLabelValues(companyID.String()).Set(float64(q.Messages))
}
