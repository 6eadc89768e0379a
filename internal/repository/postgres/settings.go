package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const settingUSDRate = "usd_rate"

// SettingsRepository реализует domain.SettingsRepository
type SettingsRepository struct {
	db          DBTX
	defaultRate decimal.Decimal
}

// NewSettingsRepository создает новый SettingsRepository.
// defaultRate используется, если курс не задан или не парсится.
func NewSettingsRepository(db DBTX, defaultRate decimal.Decimal) *SettingsRepository {
	return &SettingsRepository{db: db, defaultRate: defaultRate}
}

// GetUSDRate получает курс доллара к рублю
func (r *SettingsRepository) GetUSDRate(ctx context.Context) (decimal.Decimal, error) {
	var value string

	err := r.db.QueryRow(ctx,
		`SELECT value
		 FROM settings
		 WHERE key = $1`,
		settingUSDRate,
	).Scan(&value)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.defaultRate, nil
		}
		return decimal.Zero, fmt.Errorf("repository: failed to get usd rate: %w", err)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !rate.IsPositive() {
		return r.defaultRate, nil
	}

	return rate, nil
}
