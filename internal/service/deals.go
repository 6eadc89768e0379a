package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dealListLimit сколько последних сделок отдают списки
const dealListLimit = 20

// Источники перевода сделки в check_sent для метрик
const (
	advanceSourceCheck      = "check"
	advanceSourceReconciler = "reconciler"
)

// DealService реализует domain.DealService
type DealService struct {
	dealRepo    domain.DealRepository
	catalogRepo domain.CatalogRepository
	notifier    domain.Notifier
	metrics     *metrics.DealMetrics
	logger      *zap.Logger
}

// NewDealService создает новый DealService
func NewDealService(
	dealRepo domain.DealRepository,
	catalogRepo domain.CatalogRepository,
	notifier domain.Notifier,
	dealMetrics *metrics.DealMetrics,
	logger *zap.Logger,
) *DealService {
	return &DealService{
		dealRepo:    dealRepo,
		catalogRepo: catalogRepo,
		notifier:    notifier,
		metrics:     dealMetrics,
		logger:      logger,
	}
}

// CreateDeal открывает P2P-заявку в статусе pending_merchants.
// При ошибке валидации строка не создается.
func (s *DealService) CreateDeal(ctx context.Context, sess *domain.Session, in domain.CreateDealInput) (*domain.Deal, error) {
	if !in.AmountRub.IsPositive() {
		return nil, domain.NewValidationError("amount_rub", "must be positive")
	}
	if in.TimeMinutes < domain.MinDealMinutes || in.TimeMinutes > domain.MaxDealMinutes {
		return nil, domain.NewValidationError("time_minutes",
			fmt.Sprintf("must be between %d and %d", domain.MinDealMinutes, domain.MaxDealMinutes))
	}
	if in.CountryID == nil {
		return nil, domain.NewValidationError("country_id", "required")
	}

	country, err := s.catalogRepo.GetCountryByID(ctx, *in.CountryID)
	if err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			return nil, domain.NewValidationError("country_id", "unknown country")
		}
		return nil, fmt.Errorf("deal service: failed to resolve country %s: %w", *in.CountryID, err)
	}

	bankName := strings.TrimSpace(in.BankName)
	if bankName == "" {
		bankName = domain.BankNameOnRequest
	}

	deal, err := s.dealRepo.CreateDeal(ctx, &domain.Deal{
		UserTelegramID: sess.TelegramID,
		CountryID:      &country.ID,
		CountryName:    country.Name,
		BankName:       bankName,
		AmountRub:      in.AmountRub,
		TimeMinutes:    in.TimeMinutes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		if errors.Is(err, domain.ErrCountryNotFound) {
			return nil, domain.NewValidationError("country_id", "unknown country")
		}
		return nil, fmt.Errorf("deal service: failed to create deal for user %d: %w", sess.TelegramID, err)
	}

	s.metrics.RecordDealCreated(deal.CountryName, deal.AmountRub.InexactFloat64())
	s.logger.Info("deal created",
		zap.String("deal_id", deal.ID.String()),
		zap.Int64("user_telegram_id", deal.UserTelegramID),
		zap.String("amount_rub", deal.AmountRub.String()),
	)

	if err := s.notifier.DealCreated(ctx, deal); err != nil {
		s.metrics.RecordNotifyError("deal.created")
		s.logger.Warn("failed to publish deal created", zap.String("deal_id", deal.ID.String()), zap.Error(err))
	}

	return deal, nil
}

// ClaimMinutes возвращает время на сделку по подсказке мерчанта.
// nil означает срок из самой заявки, подсказка вне [1, 1440] дает 20 минут.
func ClaimMinutes(hint *int) *int {
	if hint == nil {
		return nil
	}
	minutes := *hint
	if minutes < domain.MinDealMinutes || minutes > domain.MaxDealMinutes {
		minutes = domain.DefaultClaimMinutes
	}
	return &minutes
}

// ClaimDeal назначает мерчанта сделке.
// Эксклюзивность обеспечивает условное обновление в хранилище,
// проигравший получает domain.ErrClaimConflict.
func (s *DealService) ClaimDeal(ctx context.Context, sess *domain.Session, dealID uuid.UUID, minutesHint *int) (*domain.Deal, error) {
	if !sess.IsMerchant {
		return nil, domain.ErrNotMerchant
	}

	start := time.Now()
	deal, err := s.dealRepo.ClaimDeal(ctx, dealID, sess.TelegramID, ClaimMinutes(minutesHint))
	if err != nil {
		if errors.Is(err, domain.ErrClaimConflict) {
			s.metrics.RecordClaim(metrics.ClaimResultConflict, time.Since(start))
			return nil, domain.ErrClaimConflict
		}
		s.metrics.RecordClaim(metrics.ClaimResultError, time.Since(start))
		return nil, fmt.Errorf("deal service: failed to claim deal %s: %w", dealID, err)
	}
	s.metrics.RecordClaim(metrics.ClaimResultWon, time.Since(start))

	s.logger.Info("deal claimed",
		zap.String("deal_id", deal.ID.String()),
		zap.Int64("merchant_telegram_id", sess.TelegramID),
		zap.Int("minutes", deal.TimeMinutes),
	)

	if err := s.notifier.DealClaimed(ctx, deal); err != nil {
		s.metrics.RecordNotifyError("deal.claimed")
		s.logger.Warn("failed to publish deal claimed", zap.String("deal_id", deal.ID.String()), zap.Error(err))
	}

	return deal, nil
}

// AdvanceOnCheck переводит сделку в check_sent после загрузки чека.
// Повторный вызов ничего не меняет и возвращает текущее состояние.
func (s *DealService) AdvanceOnCheck(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.advance(ctx, dealID)
	if err == nil && deal.Status == domain.DealStatusCheckSent {
		s.metrics.RecordDealAdvanced(advanceSourceCheck)
	}
	return deal, err
}

// Reconcile догоняет сделки, для которых чек сохранен, а перевод статуса не прошел
func (s *DealService) Reconcile(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.advance(ctx, dealID)
	if err == nil && deal.Status == domain.DealStatusCheckSent {
		s.metrics.RecordDealAdvanced(advanceSourceReconciler)
	}
	return deal, err
}

func (s *DealService) advance(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.dealRepo.MarkCheckSent(ctx, dealID)
	if err == nil {
		return deal, nil
	}
	if !errors.Is(err, domain.ErrStatusUnchanged) {
		return nil, fmt.Errorf("deal service: failed to advance deal %s: %w", dealID, err)
	}

	// Ни одна строка не изменилась: выясняем почему
	current, err := s.dealRepo.GetDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("deal service: failed to get deal %s: %w", dealID, err)
	}

	if current.Status == domain.DealStatusPendingMerchants {
		return nil, domain.NewValidationError("deal", "is not claimed yet")
	}

	return current, nil
}

// GetMyDeals получает последние сделки пользователя
func (s *DealService) GetMyDeals(ctx context.Context, sess *domain.Session) ([]*domain.Deal, error) {
	deals, err := s.dealRepo.GetDealsByUser(ctx, sess.TelegramID, dealListLimit)
	if err != nil {
		return nil, fmt.Errorf("deal service: failed to get deals for user %d: %w", sess.TelegramID, err)
	}

	return deals, nil
}

// GetExchange получает биржу: последние сделки без мерчанта
func (s *DealService) GetExchange(ctx context.Context, sess *domain.Session) ([]*domain.Deal, error) {
	if !sess.IsMerchant {
		return nil, domain.ErrNotMerchant
	}

	deals, err := s.dealRepo.GetPendingDeals(ctx, dealListLimit)
	if err != nil {
		return nil, fmt.Errorf("deal service: failed to get exchange: %w", err)
	}

	return deals, nil
}

// GetDeal получает сделку, видимую пользователю.
// Чужая сделка неотличима от несуществующей.
func (s *DealService) GetDeal(ctx context.Context, sess *domain.Session, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("deal service: failed to get deal %s: %w", dealID, err)
	}

	if !dealVisibleTo(deal, sess) {
		return nil, domain.ErrDealNotFound
	}

	return deal, nil
}

func dealVisibleTo(deal *domain.Deal, sess *domain.Session) bool {
	if deal.UserTelegramID == sess.TelegramID {
		return true
	}
	if deal.MerchantTelegramID != nil && *deal.MerchantTelegramID == sess.TelegramID {
		return true
	}
	// Мерчанты видят все сделки биржи
	return sess.IsMerchant && deal.Status == domain.DealStatusPendingMerchants
}
