package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"review-scheduler/internal/models"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the payload published for every notification.
type Event struct {
	ID             string    `json:"id"`
	AppointmentID  string    `json:"appointment_id"`
	Type           string    `json:"type"`
	RecipientID    int64     `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	Subject        string    `json:"subject"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// KafkaSender publishes notifications to a topic for an external mailer.
// Messages are keyed by appointment so one appointment's events stay ordered.
type KafkaSender struct {
	writer MessageWriter
	topic  string
}

func NewKafkaWriter(brokers string) *kafka.Writer {
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers:  SplitBrokers(brokers),
		Balancer: &kafka.Hash{},
	})
}

func NewKafkaSender(w MessageWriter, topic string) *KafkaSender {
	return &KafkaSender{writer: w, topic: topic}
}

func (s *KafkaSender) Send(ctx context.Context, n *models.NotificationLog) error {
	value, err := json.Marshal(Event{
		ID:             n.ID.String(),
		AppointmentID:  n.AppointmentID.String(),
		Type:           string(n.Type),
		RecipientID:    n.RecipientID,
		RecipientEmail: n.RecipientEmail,
		Subject:        n.Subject,
		Content:        n.Content,
		CreatedAt:      n.CreatedAt,
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: s.topic,
		Key:   []byte(n.AppointmentID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(n.ID.String())},
			{Key: "event_type", Value: []byte(n.Type)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)

	return s.writer.WriteMessages(ctx, msg)
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
