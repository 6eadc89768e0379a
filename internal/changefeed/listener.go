package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Каналы pg_notify, в которые пишут триггеры миграции 004
const (
	ChannelDeals = "deal_changes"
	ChannelUsers = "user_changes"
)

const (
	// subscriberBuffer сколько событий подписчик может не забрать,
	// прежде чем его отключат
	subscriberBuffer  = 64
	defaultRetryDelay = 2 * time.Second
	closeTimeout      = 5 * time.Second
)

var (
	// ErrUnknownTopic топик без канала уведомлений
	ErrUnknownTopic = errors.New("unknown change topic")
	// ErrFeedInterrupted соединение LISTEN потеряно, события могли пропасть
	ErrFeedInterrupted = errors.New("change feed interrupted")
	// ErrSubscriberLagged подписчик не успевал забирать события
	ErrSubscriberLagged = errors.New("change feed subscriber lagged")
)

// notificationConn выделенное соединение под LISTEN вне пула
type notificationConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type connectFunc func(ctx context.Context) (notificationConn, error)

type subscriber struct {
	topic      domain.ChangeTopic
	telegramID int64
	events     chan domain.ChangeEvent
	failed     chan error
}

// Listener реализует domain.ChangeFeed поверх LISTEN/NOTIFY.
// Одно соединение слушает оба канала и раздает события подписчикам
// по telegram id, поэтому число подписок не расходует пул.
type Listener struct {
	connect    connectFunc
	logger     *zap.Logger
	retryDelay time.Duration
	connected  atomic.Bool

	mu   sync.Mutex
	subs map[int64]map[*subscriber]struct{}
}

// NewListener создает Listener, который подключается с настройками пула,
// но отдельным соединением
func NewListener(pool *pgxpool.Pool, logger *zap.Logger) *Listener {
	connConfig := pool.Config().ConnConfig
	return newListener(func(ctx context.Context) (notificationConn, error) {
		conn, err := pgx.ConnectConfig(ctx, connConfig.Copy())
		if err != nil {
			return nil, err
		}
		return conn, nil
	}, logger)
}

func newListener(connect connectFunc, logger *zap.Logger) *Listener {
	return &Listener{
		connect:    connect,
		logger:     logger,
		retryDelay: defaultRetryDelay,
		subs:       make(map[int64]map[*subscriber]struct{}),
	}
}

// Run держит соединение LISTEN и переподключается при обрыве.
// При каждом обрыве подписчики получают ErrFeedInterrupted и должны
// перечитать состояние. Возвращается после отмены ctx.
func (l *Listener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		l.connected.Store(false)

		if ctx.Err() != nil {
			l.failAll(ErrFeedInterrupted)
			return
		}

		l.logger.Warn("change feed connection lost",
			zap.Error(err),
			zap.Duration("retry_in", l.retryDelay),
		)
		l.failAll(fmt.Errorf("%w: %v", ErrFeedInterrupted, err))

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return fmt.Errorf("changefeed: failed to connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := conn.Close(closeCtx); err != nil {
			l.logger.Debug("failed to close change feed connection", zap.Error(err))
		}
	}()

	for _, channel := range []string{ChannelDeals, ChannelUsers} {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			return fmt.Errorf("changefeed: failed to listen %s: %w", channel, err)
		}
	}

	l.connected.Store(true)
	l.logger.Info("change feed listening")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("changefeed: wait for notification: %w", err)
		}

		topic, err := topicFor(notification.Channel)
		if err != nil {
			l.logger.Warn("notification on unexpected channel", zap.String("channel", notification.Channel))
			continue
		}

		event, err := DecodeEvent(topic, notification.Payload)
		if err != nil {
			l.logger.Warn("skipping malformed change event",
				zap.String("channel", notification.Channel),
				zap.String("payload", notification.Payload),
				zap.Error(err),
			)
			continue
		}

		l.dispatch(event)
	}
}

// Ping сообщает, слушает ли Listener сейчас базу
func (l *Listener) Ping(context.Context) error {
	if !l.connected.Load() {
		return errors.New("change feed is not connected")
	}
	return nil
}

// Subscribe возвращает ленивую последовательность событий топика,
// касающихся пользователя telegramID. Подписка регистрируется при начале
// итерации и снимается при ее завершении, поэтому последовательность
// можно перезапускать. Доставка at-least-once, порядок не гарантирован.
// Последовательность заканчивается без ошибки, когда ctx отменен.
func (l *Listener) Subscribe(ctx context.Context, topic domain.ChangeTopic, telegramID int64) iter.Seq2[domain.ChangeEvent, error] {
	return func(yield func(domain.ChangeEvent, error) bool) {
		if _, err := ChannelFor(topic); err != nil {
			yield(domain.ChangeEvent{}, err)
			return
		}

		sub := l.register(topic, telegramID)
		defer l.unregister(sub)

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.failed:
				yield(domain.ChangeEvent{}, err)
				return
			case event := <-sub.events:
				if !yield(event, nil) {
					return
				}
			}
		}
	}
}

func (l *Listener) register(topic domain.ChangeTopic, telegramID int64) *subscriber {
	sub := &subscriber{
		topic:      topic,
		telegramID: telegramID,
		events:     make(chan domain.ChangeEvent, subscriberBuffer),
		failed:     make(chan error, 1),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs[telegramID] == nil {
		l.subs[telegramID] = make(map[*subscriber]struct{})
	}
	l.subs[telegramID][sub] = struct{}{}

	return sub
}

func (l *Listener) unregister(sub *subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(sub)
}

func (l *Listener) removeLocked(sub *subscriber) {
	byUser := l.subs[sub.telegramID]
	delete(byUser, sub)
	if len(byUser) == 0 {
		delete(l.subs, sub.telegramID)
	}
}

// dispatch раздает событие подписчикам, которых оно касается.
// Подписчик с полным буфером отключается, чтобы не тормозить остальных.
func (l *Listener) dispatch(event domain.ChangeEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, telegramID := range recipients(event) {
		for sub := range l.subs[telegramID] {
			if sub.topic != event.Topic {
				continue
			}

			select {
			case sub.events <- event:
			default:
				l.logger.Warn("dropping lagging change feed subscriber",
					zap.Int64("telegram_id", telegramID),
					zap.String("topic", string(sub.topic)),
				)
				l.removeLocked(sub)
				sub.failed <- ErrSubscriberLagged
			}
		}
	}
}

func (l *Listener) failAll(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, byUser := range l.subs {
		for sub := range byUser {
			sub.failed <- err
		}
	}
	l.subs = make(map[int64]map[*subscriber]struct{})
}

func (l *Listener) subscriberCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, byUser := range l.subs {
		count += len(byUser)
	}
	return count
}

// recipients пользователи, которых касается событие, без повторов
func recipients(event domain.ChangeEvent) []int64 {
	switch event.Topic {
	case domain.TopicDeals:
		ids := []int64{event.UserTelegramID}
		if event.MerchantTelegramID != nil && *event.MerchantTelegramID != event.UserTelegramID {
			ids = append(ids, *event.MerchantTelegramID)
		}
		return ids
	case domain.TopicUser:
		return []int64{event.TelegramID}
	}
	return nil
}

// ChannelFor возвращает канал уведомлений топика
func ChannelFor(topic domain.ChangeTopic) (string, error) {
	switch topic {
	case domain.TopicDeals:
		return ChannelDeals, nil
	case domain.TopicUser:
		return ChannelUsers, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
}

func topicFor(channel string) (domain.ChangeTopic, error) {
	switch channel {
	case ChannelDeals:
		return domain.TopicDeals, nil
	case ChannelUsers:
		return domain.TopicUser, nil
	}
	return "", fmt.Errorf("%w: channel %q", ErrUnknownTopic, channel)
}

// DecodeEvent разбирает payload триггера в событие топика
func DecodeEvent(topic domain.ChangeTopic, payload string) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode %s payload: %w", topic, err)
	}
	event.Topic = topic

	switch topic {
	case domain.TopicDeals:
		if event.DealID == nil || event.UserTelegramID == 0 {
			return domain.ChangeEvent{}, fmt.Errorf("decode %s payload: missing deal identity", topic)
		}
	case domain.TopicUser:
		if event.TelegramID == 0 {
			return domain.ChangeEvent{}, fmt.Errorf("decode %s payload: missing telegram_id", topic)
		}
	}

	return event, nil
}
