package service

import (
	"context"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
	"github.com/shopspring/decimal"
)

// WalletService реализует domain.WalletService
type WalletService struct {
	userRepo domain.UserRepository
}

// NewWalletService создает новый WalletService
func NewWalletService(userRepo domain.UserRepository) *WalletService {
	return &WalletService{
		userRepo: userRepo,
	}
}

// GetWallet получает свежий снимок баланса и пересчитывает его в рубли по курсу сессии
func (s *WalletService) GetWallet(ctx context.Context, sess *domain.Session) (*domain.Wallet, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, sess.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to get user %d: %w", sess.TelegramID, err)
	}

	return NewWallet(user, sess.USDRate), nil
}

// NewWallet строит кошелек из снимка пользователя
func NewWallet(user *domain.User, usdRate decimal.Decimal) *domain.Wallet {
	return &domain.Wallet{
		BalanceUSD:  user.Balance,
		BalanceRUB:  user.Balance.Mul(usdRate).Round(2),
		TotalProfit: user.TotalProfit,
		DayProfit:   user.DayProfit,
		MonthProfit: user.MonthProfit,
		Rank:        user.Rank,
	}
}

// RequestWithdrawal создает заявку на вывод. Списание выполняет внешний процесс.
func (s *WalletService) RequestWithdrawal(ctx context.Context, sess *domain.Session, amountUSD decimal.Decimal) (*domain.Withdrawal, error) {
	if !amountUSD.IsPositive() {
		return nil, domain.NewValidationError("amount_usd", "must be positive")
	}

	withdrawal, err := s.userRepo.CreateWithdrawal(ctx, sess.User.ID, sess.TelegramID, amountUSD)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to request withdrawal for user %d: %w", sess.TelegramID, err)
	}

	return withdrawal, nil
}
