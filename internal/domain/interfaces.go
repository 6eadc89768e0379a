package domain

import (
	"context"
	"iter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealRepository определяет методы для работы со сделками
type DealRepository interface {
	CreateDeal(ctx context.Context, deal *Deal) (*Deal, error)
	GetDealByID(ctx context.Context, id uuid.UUID) (*Deal, error)
	GetDealsByUser(ctx context.Context, telegramID int64, limit int) ([]*Deal, error)
	GetPendingDeals(ctx context.Context, limit int) ([]*Deal, error)
	ClaimDeal(ctx context.Context, id uuid.UUID, merchantID int64, minutes *int) (*Deal, error)
	MarkCheckSent(ctx context.Context, id uuid.UUID) (*Deal, error)
	GetDealsAwaitingCheckAdvance(ctx context.Context, limit int) ([]*Deal, error)
}

// CatalogRepository определяет методы чтения каталога реквизитов
type CatalogRepository interface {
	GetCountries(ctx context.Context) ([]*Country, error)
	GetCountryByID(ctx context.Context, id uuid.UUID) (*Country, error)
	GetBanksByCountry(ctx context.Context, countryID uuid.UUID) ([]*Bank, error)
	GetRequisitesByBank(ctx context.Context, bankID uuid.UUID) ([]*Requisite, error)
	GetRequisiteByID(ctx context.Context, id uuid.UUID) (*Requisite, error)
}

// CheckRepository определяет методы для работы с чеками
type CheckRepository interface {
	CreateCheck(ctx context.Context, check *Check) (*Check, error)
}

// UserRepository определяет методы чтения пользователей
type UserRepository interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	IsMerchant(ctx context.Context, telegramID int64) (bool, error)
	CreateWithdrawal(ctx context.Context, userID, telegramID int64, amountUSD decimal.Decimal) (*Withdrawal, error)
}

// SettingsRepository определяет методы чтения настроек
type SettingsRepository interface {
	GetUSDRate(ctx context.Context) (decimal.Decimal, error)
}

// BlobStore хранилище изображений чеков
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte) (string, error)
}

// Notifier доставляет внешние уведомления о сделках
type Notifier interface {
	DealCreated(ctx context.Context, deal *Deal) error
	DealClaimed(ctx context.Context, deal *Deal) error
}

// ChangeFeed лента изменений строк сделок и пользователей
type ChangeFeed interface {
	Subscribe(ctx context.Context, topic ChangeTopic, telegramID int64) iter.Seq2[ChangeEvent, error]
}

// SessionService определяет методы получения сессии по данным моста идентификации
type SessionService interface {
	Resolve(ctx context.Context, telegramID int64) (*Session, error)
}

// CreateDealInput параметры P2P-заявки
type CreateDealInput struct {
	CountryID   *uuid.UUID
	BankName    string
	AmountRub   decimal.Decimal
	TimeMinutes int
}

// DealService определяет методы жизненного цикла сделки
type DealService interface {
	CreateDeal(ctx context.Context, sess *Session, in CreateDealInput) (*Deal, error)
	ClaimDeal(ctx context.Context, sess *Session, dealID uuid.UUID, minutesHint *int) (*Deal, error)
	AdvanceOnCheck(ctx context.Context, dealID uuid.UUID) (*Deal, error)
	GetMyDeals(ctx context.Context, sess *Session) ([]*Deal, error)
	GetExchange(ctx context.Context, sess *Session) ([]*Deal, error)
	GetDeal(ctx context.Context, sess *Session, dealID uuid.UUID) (*Deal, error)
}

// CatalogService определяет методы разрешения реквизитов
type CatalogService interface {
	GetCountries(ctx context.Context) ([]*Country, error)
	GetBanks(ctx context.Context, countryID uuid.UUID) ([]*Bank, error)
	ResolveRequisite(ctx context.Context, bankID uuid.UUID) (*Requisite, error)
}

// SubmitCheckInput загружаемый чек и его контекст
type SubmitCheckInput struct {
	Image    []byte
	FileName string
	Context  CheckContext
}

// CheckService определяет методы привязки чеков
type CheckService interface {
	SubmitCheck(ctx context.Context, sess *Session, in SubmitCheckInput) (*Check, error)
}

// WalletService определяет методы работы с кошельком
type WalletService interface {
	GetWallet(ctx context.Context, sess *Session) (*Wallet, error)
	RequestWithdrawal(ctx context.Context, sess *Session, amountUSD decimal.Decimal) (*Withdrawal, error)
}

// RefreshService определяет методы подписки на перечитанное состояние
type RefreshService interface {
	Watch(ctx context.Context, sess *Session, emit func(*Update) error) error
}
