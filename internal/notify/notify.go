package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"go.uber.org/zap"
)

// Ключи маршрутизации внешних уведомлений
const (
	RoutingDealCreated = "deal.created"
	RoutingDealClaimed = "deal.claimed"
)

// Драйверы доставки
const (
	DriverLog      = "log"
	DriverRabbitMQ = "rabbitmq"
	DriverKafka    = "kafka"
)

// Notifier domain.Notifier, который нужно закрыть при остановке
type Notifier interface {
	domain.Notifier
	io.Closer
}

// Config параметры драйвера уведомлений
type Config struct {
	Driver       string
	AMQPURL      string
	AMQPExchange string
	KafkaBrokers []string
	KafkaTopic   string
}

// New создает Notifier по имени драйвера
func New(cfg Config, logger *zap.Logger) (Notifier, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverLog:
		return NewLogNotifier(logger), nil
	case DriverRabbitMQ:
		n, err := NewRabbitNotifier(cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err != nil {
			return nil, err
		}
		return n, nil
	case DriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("notify: kafka driver requires brokers")
		}
		return NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil
	}
	return nil, fmt.Errorf("notify: unknown driver %q", cfg.Driver)
}

// NewDealCreatedEvent собирает уведомление мерчантам о новой заявке
func NewDealCreatedEvent(deal *domain.Deal) domain.DealCreatedEvent {
	return domain.DealCreatedEvent{
		DealID:         deal.ID,
		UserTelegramID: deal.UserTelegramID,
		BankName:       deal.BankName,
		CountryName:    deal.CountryName,
		AmountRub:      deal.AmountRub.StringFixed(2),
		TimeMinutes:    deal.TimeMinutes,
	}
}

// NewDealClaimedEvent собирает уведомление заявителю о взятии сделки
func NewDealClaimedEvent(deal *domain.Deal) domain.DealClaimedEvent {
	event := domain.DealClaimedEvent{
		DealID:         deal.ID,
		UserTelegramID: deal.UserTelegramID,
	}
	if deal.MerchantTelegramID != nil {
		event.MerchantTelegramID = *deal.MerchantTelegramID
	}
	if deal.TimerUntil != nil {
		event.TimerUntil = deal.TimerUntil.UTC().Format(time.RFC3339)
	}
	return event
}

// LogNotifier пишет уведомления только в лог
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier создает новый LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) DealCreated(_ context.Context, deal *domain.Deal) error {
	event := NewDealCreatedEvent(deal)
	n.logger.Info("deal created notification",
		zap.String("routing_key", RoutingDealCreated),
		zap.String("deal_id", event.DealID.String()),
		zap.String("bank", event.BankName),
		zap.String("amount_rub", event.AmountRub),
	)
	return nil
}

func (n *LogNotifier) DealClaimed(_ context.Context, deal *domain.Deal) error {
	event := NewDealClaimedEvent(deal)
	n.logger.Info("deal claimed notification",
		zap.String("routing_key", RoutingDealClaimed),
		zap.String("deal_id", event.DealID.String()),
		zap.Int64("user_telegram_id", event.UserTelegramID),
		zap.Int64("merchant_telegram_id", event.MerchantTelegramID),
	)
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
