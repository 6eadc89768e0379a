package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dealColumns = `id, user_telegram_id, merchant_telegram_id, country_id, country_name, bank_name,
	amount_rub, time_minutes, status, timer_until, recipient_name, card_number, created_at, updated_at`

// DealRepository реализует domain.DealRepository
type DealRepository struct {
	db DBTX
}

// NewDealRepository создает новый DealRepository
func NewDealRepository(db DBTX) *DealRepository {
	return &DealRepository{db: db}
}

func scanDeal(row pgx.Row) (*domain.Deal, error) {
	deal := &domain.Deal{}
	err := row.Scan(
		&deal.ID, &deal.UserTelegramID, &deal.MerchantTelegramID, &deal.CountryID, &deal.CountryName,
		&deal.BankName, &deal.AmountRub, &deal.TimeMinutes, &deal.Status, &deal.TimerUntil,
		&deal.RecipientName, &deal.CardNumber, &deal.CreatedAt, &deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func collectDeals(rows pgx.Rows) ([]*domain.Deal, error) {
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating deals: %w", err)
	}

	return deals, nil
}

// CreateDeal создает новую сделку в статусе pending_merchants
func (r *DealRepository) CreateDeal(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	created, err := scanDeal(r.db.QueryRow(ctx,
		`INSERT INTO deals (user_telegram_id, country_id, country_name, bank_name, amount_rub,
		                    time_minutes, status, recipient_name, card_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+dealColumns,
		deal.UserTelegramID, deal.CountryID, deal.CountryName, deal.BankName, deal.AmountRub,
		deal.TimeMinutes, domain.DealStatusPendingMerchants, deal.RecipientName, deal.CardNumber,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return nil, domain.ErrCountryNotFound
		case pgCheckViolation:
			return nil, domain.NewValidationError("deal", "violates storage constraint")
		}
		return nil, fmt.Errorf("repository: failed to create deal for user %d: %w", deal.UserTelegramID, err)
	}

	return created, nil
}

// GetDealByID получает сделку по ID
func (r *DealRepository) GetDealByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	deal, err := scanDeal(r.db.QueryRow(ctx,
		`SELECT `+dealColumns+`
		 FROM deals
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("repository: failed to get deal %s: %w", id, err)
	}

	return deal, nil
}

// GetDealsByUser получает последние сделки заявителя
func (r *DealRepository) GetDealsByUser(ctx context.Context, telegramID int64, limit int) ([]*domain.Deal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dealColumns+`
		 FROM deals
		 WHERE user_telegram_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		telegramID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get deals for user %d: %w", telegramID, err)
	}

	return collectDeals(rows)
}

// GetPendingDeals получает последние сделки, ожидающие мерчанта
func (r *DealRepository) GetPendingDeals(ctx context.Context, limit int) ([]*domain.Deal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dealColumns+`
		 FROM deals
		 WHERE status = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		domain.DealStatusPendingMerchants, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pending deals: %w", err)
	}

	return collectDeals(rows)
}

// ClaimDeal назначает мерчанта сделке одним условным UPDATE.
// Строка меняется только если она все еще в pending_merchants, поэтому из
// параллельных попыток выигрывает ровно одна, остальные получают ErrClaimConflict.
// Без minutes срок берется из time_minutes самой заявки.
func (r *DealRepository) ClaimDeal(ctx context.Context, id uuid.UUID, merchantID int64, minutes *int) (*domain.Deal, error) {
	deal, err := scanDeal(r.db.QueryRow(ctx,
		`UPDATE deals
		 SET merchant_telegram_id = $1, status = $2,
		     time_minutes = COALESCE($3::int, time_minutes),
		     timer_until = NOW() + make_interval(mins => COALESCE($3::int, time_minutes)),
		     updated_at = NOW()
		 WHERE id = $4 AND status = $5
		 RETURNING `+dealColumns,
		merchantID, domain.DealStatusTaken, minutes, id, domain.DealStatusPendingMerchants,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClaimConflict
		}
		return nil, fmt.Errorf("repository: failed to claim deal %s: %w", id, err)
	}

	return deal, nil
}

// MarkCheckSent переводит сделку в check_sent, если она в оплачиваемом статусе.
// Если ни одна строка не изменилась, возвращает domain.ErrStatusUnchanged.
func (r *DealRepository) MarkCheckSent(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	deal, err := scanDeal(r.db.QueryRow(ctx,
		`UPDATE deals
		 SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = ANY($3)
		 RETURNING `+dealColumns,
		domain.DealStatusCheckSent, id, statusNames(domain.PayableDealStatuses()),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatusUnchanged
		}
		return nil, fmt.Errorf("repository: failed to mark check sent for deal %s: %w", id, err)
	}

	return deal, nil
}

// GetDealsAwaitingCheckAdvance получает сделки, у которых уже есть чек,
// но статус так и не стал check_sent
func (r *DealRepository) GetDealsAwaitingCheckAdvance(ctx context.Context, limit int) ([]*domain.Deal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dealColumns+`
		 FROM deals d
		 WHERE d.status = ANY($1)
		   AND EXISTS (SELECT 1 FROM checks c WHERE c.deal_id = d.id)
		 ORDER BY d.updated_at ASC
		 LIMIT $2`,
		statusNames(domain.PayableDealStatuses()), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get deals awaiting check advance: %w", err)
	}

	return collectDeals(rows)
}

func statusNames(statuses []domain.DealStatus) []string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return names
}
