package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	defaultExchange = "deal_events"
	dialTimeout     = 10 * time.Second
)

// amqpChannel часть *amqp091.Channel, нужная для публикации
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitNotifier публикует уведомления в topic exchange RabbitMQ
type RabbitNotifier struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
	logger   *zap.Logger
}

// NewRabbitNotifier подключается к брокеру и объявляет exchange
func NewRabbitNotifier(amqpURL, exchange string, logger *zap.Logger) (*RabbitNotifier, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("notify: invalid amqp url: %w", err)
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("notify: failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("notify: failed to open channel: %w", err)
	}

	n, err := newRabbitNotifier(ch, exchange, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	n.conn = conn
	return n, nil
}

func newRabbitNotifier(ch amqpChannel, exchange string, logger *zap.Logger) (*RabbitNotifier, error) {
	if exchange == "" {
		exchange = defaultExchange
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("notify: failed to declare exchange %s: %w", exchange, err)
	}
	return &RabbitNotifier{channel: ch, exchange: exchange, logger: logger}, nil
}

func (n *RabbitNotifier) DealCreated(ctx context.Context, deal *domain.Deal) error {
	return n.publish(ctx, RoutingDealCreated, NewDealCreatedEvent(deal))
}

func (n *RabbitNotifier) DealClaimed(ctx context.Context, deal *domain.Deal) error {
	return n.publish(ctx, RoutingDealClaimed, NewDealClaimedEvent(deal))
}

func (n *RabbitNotifier) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: failed to marshal %s: %w", routingKey, err)
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return &domain.StorageError{Op: "publish " + routingKey, Err: err}
	}

	n.logger.Debug("notification published",
		zap.String("exchange", n.exchange),
		zap.String("routing_key", routingKey),
	)
	return nil
}

// Close закрывает канал и соединение
func (n *RabbitNotifier) Close() error {
	var errs []error
	if n.channel != nil {
		errs = append(errs, n.channel.Close())
	}
	if n.conn != nil {
		errs = append(errs, n.conn.Close())
	}
	return errors.Join(errs...)
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("scheme must be amqp:// or amqps://")
	}
	return clean, nil
}
