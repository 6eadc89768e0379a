package domain

import "github.com/google/uuid"

// ChangeTopic логический топик ленты изменений
type ChangeTopic string

const (
	// TopicDeals изменения сделок, где пользователь заявитель или мерчант
	TopicDeals ChangeTopic = "deals"
	// TopicUser изменения строки пользователя (баланс, прибыль)
	TopicUser ChangeTopic = "user"
)

// ChangeEvent событие ленты изменений. Доставка at-least-once,
// порядок между топиками не гарантирован, поэтому событие несет только
// идентификаторы, а актуальное состояние всегда перечитывается.
type ChangeEvent struct {
	Topic              ChangeTopic `json:"topic"`
	DealID             *uuid.UUID  `json:"deal_id,omitempty"`
	UserTelegramID     int64       `json:"user_telegram_id,omitempty"`
	MerchantTelegramID *int64      `json:"merchant_telegram_id,omitempty"`
	Status             DealStatus  `json:"status,omitempty"`
	TelegramID         int64       `json:"telegram_id,omitempty"`
}

// UpdateNotice подсказка клиенту, что изменилось в сделке
type UpdateNotice string

const (
	NoticeDealTaken          UpdateNotice = "deal_taken"
	NoticeRequisitesReceived UpdateNotice = "requisites_received"
	NoticeBalanceUpdated     UpdateNotice = "balance_updated"
)

// Update перечитанное состояние после события ленты изменений.
// Deals список сделок заявителя, Deal сделка мерчанта, которой касалось событие.
type Update struct {
	Topic  ChangeTopic  `json:"topic"`
	Notice UpdateNotice `json:"notice,omitempty"`
	Deals  []*Deal      `json:"deals,omitempty"`
	Deal   *Deal        `json:"deal,omitempty"`
	Wallet *Wallet      `json:"wallet,omitempty"`
}

// DealCreatedEvent внешнее уведомление о новой заявке для мерчантов
type DealCreatedEvent struct {
	DealID         uuid.UUID `json:"deal_id"`
	UserTelegramID int64     `json:"user_telegram_id"`
	BankName       string    `json:"bank_name"`
	CountryName    string    `json:"country_name"`
	AmountRub      string    `json:"amount_rub"`
	TimeMinutes    int       `json:"time_minutes"`
}

// DealClaimedEvent внешнее уведомление заявителю о взятии сделки
type DealClaimedEvent struct {
	DealID             uuid.UUID `json:"deal_id"`
	UserTelegramID     int64     `json:"user_telegram_id"`
	MerchantTelegramID int64     `json:"merchant_telegram_id"`
	TimerUntil         string    `json:"timer_until"`
}
