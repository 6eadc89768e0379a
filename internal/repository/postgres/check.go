package postgres

import (
	"context"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
)

// CheckRepository реализует domain.CheckRepository
type CheckRepository struct {
	db DBTX
}

// NewCheckRepository создает новый CheckRepository
func NewCheckRepository(db DBTX) *CheckRepository {
	return &CheckRepository{db: db}
}

// CreateCheck сохраняет чек со статусом pending и контекстом привязки как есть
func (r *CheckRepository) CreateCheck(ctx context.Context, check *domain.Check) (*domain.Check, error) {
	created := &domain.Check{
		UserID:      check.UserID,
		TelegramID:  check.TelegramID,
		FileID:      check.FileID,
		DealID:      check.DealID,
		RequisiteID: check.RequisiteID,
		Status:      domain.CheckStatusPending,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO checks (user_id, telegram_id, file_id, deal_id, requisite_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		check.UserID, check.TelegramID, check.FileID, check.DealID, check.RequisiteID, domain.CheckStatusPending,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			// Ссылка на несуществующую сделку или реквизит
			if check.DealID != nil {
				return nil, domain.ErrDealNotFound
			}
			return nil, domain.ErrRequisiteNotFound
		case pgCheckViolation:
			return nil, domain.NewValidationError("context", "deal and requisite are mutually exclusive")
		}
		return nil, fmt.Errorf("repository: failed to create check for user %d: %w", check.TelegramID, err)
	}

	return created, nil
}
