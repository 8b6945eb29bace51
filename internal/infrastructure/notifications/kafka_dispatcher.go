package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const defaultNotificationsTopic = "marketplace.notifications"

var ErrMissingKafkaBrokers = errors.New("missing KAFKA_BROKERS")

// KafkaDispatcher publishes lifecycle events to the notifications topic.
// Dispatch is fire and forget: delivery failures are logged, never surfaced
// to the state transition that produced the event.
type KafkaDispatcher struct {
	writer *kafka.Writer
	topic  string
}

var _ interfaces.INotificationDispatcher = (*KafkaDispatcher)(nil)

func NewKafkaDispatcherFromEnv() (*KafkaDispatcher, error) {
	raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if raw == "" {
		return nil, ErrMissingKafkaBrokers
	}
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	topic := os.Getenv("NOTIFICATIONS_TOPIC")
	if topic == "" {
		topic = defaultNotificationsTopic
	}

	return &KafkaDispatcher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		topic: topic,
	}, nil
}

// Dispatch publishes asynchronously. Events for the same project share a
// partition key so consumers see them in order.
func (d *KafkaDispatcher) Dispatch(ctx context.Context, event entities.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[notification][dispatcher] event marshal failed type=%s project_id=%s err=%v", event.Type, event.ProjectID, err)
		return
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		err := d.writer.WriteMessages(writeCtx, kafka.Message{
			Key:   []byte(event.ProjectID),
			Value: payload,
			Time:  event.At,
		})
		if err != nil {
			log.Printf("[notification][dispatcher] publish failed type=%s project_id=%s err=%v", event.Type, event.ProjectID, err)
			return
		}
		log.Printf("[notification][dispatcher] published type=%s project_id=%s recipient_id=%s", event.Type, event.ProjectID, event.RecipientID)
	}()
}

func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}
