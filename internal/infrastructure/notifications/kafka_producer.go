package notifications

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// EmailMessage is the event consumed by the mail service
type EmailMessage struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// EmailPublisher hands an email off for asynchronous delivery
type EmailPublisher interface {
	PublishEmail(ctx context.Context, msg EmailMessage) error
}

// messageWriter is the subset of *kafka.Writer the producer needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes email events to a Kafka topic
type Producer struct {
	writer messageWriter
	logger *zap.Logger
}

// NewProducer creates a SASL/TLS Kafka producer. An empty broker yields a producer
// that skips publishing.
func NewProducer(broker, topic, username, password string, logger *zap.Logger) *Producer {
	if broker == "" {
		return &Producer{logger: logger}
	}

	var transport *kafka.Transport
	if username != "" {
		transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{},
		}
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	if transport != nil {
		w.Transport = transport
	}

	return &Producer{writer: w, logger: logger}
}

// PublishEmail implements EmailPublisher
func (p *Producer) PublishEmail(ctx context.Context, msg EmailMessage) error {
	if p == nil || p.writer == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("kafka producer not configured, skipping email", zap.String("to", msg.To))
		}
		return nil
	}

	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: value,
		Time:  msg.SentAt,
	}); err != nil {
		return fmt.Errorf("failed to publish email event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
