package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository реализует репозиторий пользователей.
// Строки пользователей создает мост идентификации, баланс меняет процесс расчетов.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByTelegramID получает пользователя и снимок баланса по Telegram ID
func (r *UserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id, telegram_id, status, balance, total_profit, day_profit, month_profit, rank
		 FROM users
		 WHERE telegram_id = $1`,
		telegramID,
	).Scan(&user.ID, &user.TelegramID, &user.Status, &user.Balance,
		&user.TotalProfit, &user.DayProfit, &user.MonthProfit, &user.Rank)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by telegram id %d: %w", telegramID, err)
	}

	return user, nil
}

// IsMerchant проверяет, зарегистрирован ли пользователь как мерчант
func (r *UserRepository) IsMerchant(ctx context.Context, telegramID int64) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM merchants WHERE telegram_id = $1)`,
		telegramID,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("repository: failed to check merchant %d: %w", telegramID, err)
	}

	return exists, nil
}

// CreateWithdrawal создает заявку на вывод в статусе pending
func (r *UserRepository) CreateWithdrawal(ctx context.Context, userID, telegramID int64, amountUSD decimal.Decimal) (*domain.Withdrawal, error) {
	withdrawal := &domain.Withdrawal{
		UserID:     userID,
		TelegramID: telegramID,
		AmountUSD:  amountUSD,
		Status:     domain.WithdrawalStatusPending,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO withdrawals (user_id, telegram_id, amount_usd, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		userID, telegramID, amountUSD, domain.WithdrawalStatusPending,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create withdrawal for user %d: %w", telegramID, err)
	}

	return withdrawal, nil
}
