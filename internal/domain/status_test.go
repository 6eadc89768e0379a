package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     DealStatus
		to       DealStatus
		expected bool
	}{
		{from: DealStatusPendingMerchants, to: DealStatusTaken, expected: true},
		{from: DealStatusPendingMerchants, to: DealStatusCheckSent, expected: false},
		{from: DealStatusTaken, to: DealStatusRequisitesSent, expected: true},
		{from: DealStatusTaken, to: DealStatusCheckSent, expected: true},
		{from: DealStatusRequisitesSent, to: DealStatusWaitingPayment, expected: true},
		{from: DealStatusWaitingPayment, to: DealStatusCheckSent, expected: true},
		{from: DealStatusWaitingPayment, to: DealStatusRequisitesSent, expected: false},
		{from: DealStatusCheckSent, to: DealStatusCompleted, expected: true},
		{from: DealStatusCheckSent, to: DealStatusCheckSent, expected: false},
		{from: DealStatusCompleted, to: DealStatusCancelled, expected: false},
		{from: DealStatusCancelled, to: DealStatusTaken, expected: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

// Ни один путь по графу не возвращает сделку в pending_merchants
func TestDealStatus_NoReturnToPending(t *testing.T) {
	for _, start := range dealStatuses {
		t.Run(string(start), func(t *testing.T) {
			visited := map[DealStatus]bool{start: true}
			queue := []DealStatus{start}

			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]

				for _, next := range dealStatuses {
					if !current.CanTransitionTo(next) {
						continue
					}
					assert.NotEqual(t, DealStatusPendingMerchants, next, "%s -> %s", current, next)
					if !visited[next] {
						visited[next] = true
						queue = append(queue, next)
					}
				}
			}
		})
	}
}

func TestDealStatus_TerminalHaveNoExits(t *testing.T) {
	for _, terminal := range []DealStatus{DealStatusCompleted, DealStatusCancelled} {
		for _, next := range dealStatuses {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestPayableDealStatuses(t *testing.T) {
	assert.Equal(t,
		[]DealStatus{DealStatusTaken, DealStatusRequisitesSent, DealStatusWaitingPayment},
		PayableDealStatuses(),
	)

	for _, status := range dealStatuses {
		expected := status == DealStatusTaken || status == DealStatusRequisitesSent || status == DealStatusWaitingPayment
		assert.Equal(t, expected, status.IsPayable(), status)
	}
}
