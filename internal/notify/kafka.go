package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultTopic = "deal-events"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier публикует уведомления в топик Kafka.
// Ключ сообщения ID сделки, тип события в заголовке event.
type KafkaNotifier struct {
	writer messageWriter
	logger *zap.Logger
}

// NewKafkaNotifier создает новый KafkaNotifier
func NewKafkaNotifier(brokers []string, topic string, logger *zap.Logger) *KafkaNotifier {
	if topic == "" {
		topic = defaultTopic
	}
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

func (n *KafkaNotifier) DealCreated(ctx context.Context, deal *domain.Deal) error {
	return n.publish(ctx, RoutingDealCreated, deal.ID.String(), NewDealCreatedEvent(deal))
}

func (n *KafkaNotifier) DealClaimed(ctx context.Context, deal *domain.Deal) error {
	return n.publish(ctx, RoutingDealClaimed, deal.ID.String(), NewDealClaimedEvent(deal))
}

func (n *KafkaNotifier) publish(ctx context.Context, eventType, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: failed to marshal %s: %w", eventType, err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: "event", Value: []byte(eventType)}},
	})
	if err != nil {
		return &domain.StorageError{Op: "publish " + eventType, Err: err}
	}

	n.logger.Debug("notification published", zap.String("event", eventType), zap.String("key", key))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
