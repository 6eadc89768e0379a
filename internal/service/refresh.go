package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Refresher реализует domain.RefreshService.
// Каждое событие ленты сводится к перечитыванию сущности, поэтому
// дубликаты и переупорядочивание событий безопасны.
type Refresher struct {
	feed     domain.ChangeFeed
	dealRepo domain.DealRepository
	userRepo domain.UserRepository
	metrics  *metrics.DealMetrics
	logger   *zap.Logger
}

// NewRefresher создает новый Refresher
func NewRefresher(
	feed domain.ChangeFeed,
	dealRepo domain.DealRepository,
	userRepo domain.UserRepository,
	dealMetrics *metrics.DealMetrics,
	logger *zap.Logger,
) *Refresher {
	return &Refresher{
		feed:     feed,
		dealRepo: dealRepo,
		userRepo: userRepo,
		metrics:  dealMetrics,
		logger:   logger,
	}
}

// Watch отдает начальный снимок сделок и кошелька, затем новый снимок
// на каждое событие ленты, касающееся пользователя сессии.
// Возвращает nil, когда ctx отменен.
func (r *Refresher) Watch(ctx context.Context, sess *domain.Session, emit func(*domain.Update) error) error {
	var mu sync.Mutex
	send := func(update *domain.Update) error {
		mu.Lock()
		defer mu.Unlock()
		return emit(update)
	}

	if err := r.refreshDeals(ctx, sess, "", send); err != nil {
		return err
	}
	if err := r.refreshWallet(ctx, sess, "", send); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event, err := range r.feed.Subscribe(gctx, domain.TopicDeals, sess.TelegramID) {
			if err != nil {
				return fmt.Errorf("refresher: deals feed: %w", err)
			}
			r.metrics.RecordChangeEvent(string(event.Topic))
			if err := r.refreshDealEvent(gctx, sess, event, send); err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		for event, err := range r.feed.Subscribe(gctx, domain.TopicUser, sess.TelegramID) {
			if err != nil {
				return fmt.Errorf("refresher: user feed: %w", err)
			}
			r.metrics.RecordChangeEvent(string(event.Topic))
			if err := r.refreshWallet(gctx, sess, domain.NoticeBalanceUpdated, send); err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if ctx.Err() != nil {
		// Подписчик ушел, это штатное завершение
		return nil
	}
	return err
}

func (r *Refresher) refreshDeals(ctx context.Context, sess *domain.Session, notice domain.UpdateNotice, send func(*domain.Update) error) error {
	deals, err := r.dealRepo.GetDealsByUser(ctx, sess.TelegramID, dealListLimit)
	if err != nil {
		return fmt.Errorf("refresher: failed to reload deals for user %d: %w", sess.TelegramID, err)
	}

	return send(&domain.Update{Topic: domain.TopicDeals, Notice: notice, Deals: deals})
}

// refreshDealEvent перечитывает то, что затронуло событие: список своих
// сделок для заявителя или саму сделку для мерчанта
func (r *Refresher) refreshDealEvent(ctx context.Context, sess *domain.Session, event domain.ChangeEvent, send func(*domain.Update) error) error {
	if event.UserTelegramID == sess.TelegramID || event.DealID == nil {
		return r.refreshDeals(ctx, sess, dealNotice(event, sess.TelegramID), send)
	}

	deal, err := r.dealRepo.GetDealByID(ctx, *event.DealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return nil
		}
		return fmt.Errorf("refresher: failed to reload deal %s: %w", *event.DealID, err)
	}

	// Событие могло устареть: сделка уже не у этого мерчанта
	if deal.MerchantTelegramID == nil || *deal.MerchantTelegramID != sess.TelegramID {
		return nil
	}

	return send(&domain.Update{Topic: domain.TopicDeals, Deal: deal})
}

func (r *Refresher) refreshWallet(ctx context.Context, sess *domain.Session, notice domain.UpdateNotice, send func(*domain.Update) error) error {
	user, err := r.userRepo.GetUserByTelegramID(ctx, sess.TelegramID)
	if err != nil {
		return fmt.Errorf("refresher: failed to reload user %d: %w", sess.TelegramID, err)
	}

	return send(&domain.Update{Topic: domain.TopicUser, Notice: notice, Wallet: NewWallet(user, sess.USDRate)})
}

// dealNotice подсказка для заявителя: сделку взяли или прислали реквизиты
func dealNotice(event domain.ChangeEvent, telegramID int64) domain.UpdateNotice {
	if event.UserTelegramID != telegramID {
		return ""
	}

	switch event.Status {
	case domain.DealStatusTaken:
		return domain.NoticeDealTaken
	case domain.DealStatusRequisitesSent, domain.DealStatusWaitingPayment:
		return domain.NoticeRequisitesReceived
	}
	return ""
}
