package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealStatus представляет статус сделки
type DealStatus string

const (
	DealStatusPendingMerchants DealStatus = "pending_merchants"
	DealStatusTaken            DealStatus = "taken"
	DealStatusRequisitesSent   DealStatus = "requisites_sent"
	DealStatusWaitingPayment   DealStatus = "waiting_payment"
	DealStatusCheckSent        DealStatus = "check_sent"
	DealStatusCompleted        DealStatus = "completed"
	DealStatusCancelled        DealStatus = "cancelled"
)

// CheckStatus представляет статус проверки чека
type CheckStatus string

const (
	CheckStatusPending  CheckStatus = "pending"
	CheckStatusApproved CheckStatus = "approved"
	CheckStatusRejected CheckStatus = "rejected"
)

// ApprovalStatus представляет статус пользователя в системе модерации
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// WithdrawalStatus представляет статус заявки на вывод
type WithdrawalStatus string

const (
	WithdrawalStatusPending WithdrawalStatus = "pending"
)

const (
	// DefaultClaimMinutes время на сделку, если мерчант не указал корректное
	DefaultClaimMinutes = 20
	// MinDealMinutes и MaxDealMinutes границы таймера сделки
	MinDealMinutes = 1
	MaxDealMinutes = 1440

	// BankNameOnRequest банк P2P-заявки, когда пользователь его не выбрал
	BankNameOnRequest = "По запросу"
)

// User представляет пользователя и снимок его баланса.
// Баланс и прибыль изменяются только внешним процессом расчетов.
type User struct {
	ID          int64           `json:"-"`
	TelegramID  int64           `json:"telegram_id"`
	Status      ApprovalStatus  `json:"status"`
	Balance     decimal.Decimal `json:"balance"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	DayProfit   decimal.Decimal `json:"day_profit"`
	MonthProfit decimal.Decimal `json:"month_profit"`
	Rank        *string         `json:"rank,omitempty"`
}

// Session явный контекст запроса вместо глобального состояния клиента
type Session struct {
	User       *User
	TelegramID int64
	IsMerchant bool
	USDRate    decimal.Decimal
}

// Country страна каталога реквизитов
type Country struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Bank банк внутри страны
type Bank struct {
	ID        uuid.UUID `json:"id"`
	CountryID uuid.UUID `json:"country_id"`
	Name      string    `json:"name"`
}

// Requisite платежное назначение банка
type Requisite struct {
	ID            uuid.UUID       `json:"id"`
	BankID        uuid.UUID       `json:"bank_id"`
	RecipientName string          `json:"recipient_name"`
	CardNumber    string          `json:"card_number"`
	MinAmount     decimal.Decimal `json:"min_amount"`
	MaxAmount     decimal.Decimal `json:"max_amount"`
}

// Deal представляет заявку на обмен
type Deal struct {
	ID                 uuid.UUID       `json:"id"`
	UserTelegramID     int64           `json:"user_telegram_id"`
	MerchantTelegramID *int64          `json:"merchant_telegram_id"`
	CountryID          *uuid.UUID      `json:"country_id"`
	CountryName        string          `json:"country_name"`
	BankName           string          `json:"bank_name"`
	AmountRub          decimal.Decimal `json:"amount_rub"`
	TimeMinutes        int             `json:"time_minutes"`
	Status             DealStatus      `json:"status"`
	TimerUntil         *time.Time      `json:"timer_until"`
	RecipientName      *string         `json:"recipient_name,omitempty"`
	CardNumber         *string         `json:"card_number,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Check представляет загруженный чек.
// DealID и RequisiteID никогда не заполнены одновременно.
type Check struct {
	ID          uuid.UUID   `json:"id"`
	UserID      int64       `json:"-"`
	TelegramID  int64       `json:"telegram_id"`
	FileID      string      `json:"file_id"`
	DealID      *uuid.UUID  `json:"deal_id"`
	RequisiteID *uuid.UUID  `json:"requisite_id"`
	Status      CheckStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CheckContext контекст привязки чека: сделка, реквизит или ничего
type CheckContext struct {
	DealID      *uuid.UUID
	RequisiteID *uuid.UUID
}

// Withdrawal заявка на вывод средств
type Withdrawal struct {
	ID         uuid.UUID        `json:"id"`
	UserID     int64            `json:"-"`
	TelegramID int64            `json:"telegram_id"`
	AmountUSD  decimal.Decimal  `json:"amount_usd"`
	Status     WithdrawalStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Wallet баланс пользователя в долларах и рублях
type Wallet struct {
	BalanceUSD  decimal.Decimal `json:"balance_usd"`
	BalanceRUB  decimal.Decimal `json:"balance_rub"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	DayProfit   decimal.Decimal `json:"day_profit"`
	MonthProfit decimal.Decimal `json:"month_profit"`
	Rank        *string         `json:"rank,omitempty"`
}
