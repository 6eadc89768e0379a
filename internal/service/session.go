package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
)

// SessionService реализует domain.SessionService.
// Собирает явную сессию из данных моста идентификации вместо глобального состояния.
type SessionService struct {
	userRepo     domain.UserRepository
	settingsRepo domain.SettingsRepository
}

// NewSessionService создает новый SessionService
func NewSessionService(userRepo domain.UserRepository, settingsRepo domain.SettingsRepository) *SessionService {
	return &SessionService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

// Resolve загружает пользователя, признак мерчанта и курс.
// Пользователь без статуса approved сессию не получает.
func (s *SessionService) Resolve(ctx context.Context, telegramID int64) (*domain.Session, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("session service: failed to get user %d: %w", telegramID, err)
	}

	if user.Status != domain.ApprovalStatusApproved {
		return nil, domain.ErrNotApproved
	}

	isMerchant, err := s.userRepo.IsMerchant(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("session service: failed to check merchant %d: %w", telegramID, err)
	}

	rate, err := s.settingsRepo.GetUSDRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("session service: failed to get usd rate: %w", err)
	}

	return &domain.Session{
		User:       user,
		TelegramID: telegramID,
		IsMerchant: isMerchant,
		USDRate:    rate,
	}, nil
}
