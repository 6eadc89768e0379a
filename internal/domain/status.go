package domain

// dealStatuses все статусы сделки в порядке жизненного цикла
var dealStatuses = []DealStatus{
	DealStatusPendingMerchants,
	DealStatusTaken,
	DealStatusRequisitesSent,
	DealStatusWaitingPayment,
	DealStatusCheckSent,
	DealStatusCompleted,
	DealStatusCancelled,
}

// dealTransitions граф допустимых переходов статуса сделки.
// pending_merchants не достижим ни из одного состояния.
var dealTransitions = map[DealStatus][]DealStatus{
	DealStatusPendingMerchants: {DealStatusTaken, DealStatusCancelled},
	DealStatusTaken:            {DealStatusRequisitesSent, DealStatusWaitingPayment, DealStatusCheckSent, DealStatusCancelled},
	DealStatusRequisitesSent:   {DealStatusWaitingPayment, DealStatusCheckSent, DealStatusCancelled},
	DealStatusWaitingPayment:   {DealStatusCheckSent, DealStatusCancelled},
	DealStatusCheckSent:        {DealStatusCompleted, DealStatusCancelled},
}

// CanTransitionTo сообщает, допустим ли переход из s в next
func (s DealStatus) CanTransitionTo(next DealStatus) bool {
	for _, candidate := range dealTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsPayable сообщает, переводит ли чек сделку из этого статуса в check_sent
func (s DealStatus) IsPayable() bool {
	return s.CanTransitionTo(DealStatusCheckSent)
}

// PayableDealStatuses статусы, из которых чек переводит сделку в check_sent
func PayableDealStatuses() []DealStatus {
	var statuses []DealStatus
	for _, status := range dealStatuses {
		if status.IsPayable() {
			statuses = append(statuses, status)
		}
	}
	return statuses
}
