package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/drop-service/internal/domain"
	domainmocks "github.com/avc/drop-service/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReconciler struct {
	mu    sync.Mutex
	calls []uuid.UUID
	err   error
	done  chan uuid.UUID
}

func (f *fakeReconciler) Reconcile(_ context.Context, dealID uuid.UUID) (*domain.Deal, error) {
	f.mu.Lock()
	f.calls = append(f.calls, dealID)
	f.mu.Unlock()
	if f.done != nil {
		f.done <- dealID
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Deal{ID: dealID, Status: domain.DealStatusCheckSent}, nil
}

func (f *fakeReconciler) called() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.calls...)
}

func TestPool_ScanStalledDeals(t *testing.T) {
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	pool := NewPool(1, 10, time.Minute, mockDealRepo, &fakeReconciler{}, zap.NewNop())
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	stalled := []*domain.Deal{
		{ID: first, Status: domain.DealStatusTaken},
		{ID: second, Status: domain.DealStatusWaitingPayment},
	}

	mockDealRepo.EXPECT().GetDealsAwaitingCheckAdvance(mock.Anything, scanBatch).Return(stalled, nil).Twice()

	pool.scanStalledDeals(ctx)
	// Повторный проход не дублирует сделки, которые еще в очереди
	pool.scanStalledDeals(ctx)

	require.Len(t, pool.queue, 2)
	assert.Equal(t, first, <-pool.queue)
	assert.Equal(t, second, <-pool.queue)
}

func TestPool_ScanStalledDeals_QueueFull(t *testing.T) {
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	pool := NewPool(1, 1, time.Minute, mockDealRepo, &fakeReconciler{}, zap.NewNop())

	first, second := uuid.New(), uuid.New()
	mockDealRepo.EXPECT().GetDealsAwaitingCheckAdvance(mock.Anything, scanBatch).
		Return([]*domain.Deal{{ID: first}, {ID: second}}, nil).Once()

	pool.scanStalledDeals(context.Background())

	require.Len(t, pool.queue, 1)
	assert.Equal(t, first, <-pool.queue)

	// Пропущенная сделка не считается занятой и попадет в следующий проход
	assert.True(t, pool.markInFlight(second))
}

func TestPool_ScanStalledDeals_Error(t *testing.T) {
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	pool := NewPool(1, 10, time.Minute, mockDealRepo, &fakeReconciler{}, zap.NewNop())

	mockDealRepo.EXPECT().GetDealsAwaitingCheckAdvance(mock.Anything, scanBatch).Return(nil, errors.New("db error")).Once()

	pool.scanStalledDeals(context.Background())
	assert.Empty(t, pool.queue)
}

func TestPool_ProcessDeal(t *testing.T) {
	t.Run("Success releases deal", func(t *testing.T) {
		reconciler := &fakeReconciler{}
		pool := NewPool(1, 10, time.Minute, domainmocks.NewDealRepositoryMock(t), reconciler, zap.NewNop())
		dealID := uuid.New()

		require.True(t, pool.markInFlight(dealID))
		pool.processDeal(context.Background(), dealID)

		assert.Equal(t, []uuid.UUID{dealID}, reconciler.called())
		assert.True(t, pool.markInFlight(dealID))
	})

	t.Run("Failure releases deal for retry", func(t *testing.T) {
		reconciler := &fakeReconciler{err: errors.New("db error")}
		pool := NewPool(1, 10, time.Minute, domainmocks.NewDealRepositoryMock(t), reconciler, zap.NewNop())
		dealID := uuid.New()

		require.True(t, pool.markInFlight(dealID))
		pool.processDeal(context.Background(), dealID)

		assert.True(t, pool.markInFlight(dealID))
	})
}

func TestPool_StartStop(t *testing.T) {
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	reconciler := &fakeReconciler{done: make(chan uuid.UUID, 1)}
	pool := NewPool(2, 10, time.Hour, mockDealRepo, reconciler, zap.NewNop())

	dealID := uuid.New()
	mockDealRepo.EXPECT().GetDealsAwaitingCheckAdvance(mock.Anything, scanBatch).
		Return([]*domain.Deal{{ID: dealID, Status: domain.DealStatusTaken}}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	select {
	case got := <-reconciler.done:
		assert.Equal(t, dealID, got)
	case <-time.After(time.Second):
		t.Fatal("deal was not reconciled")
	}

	cancel()
	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool(0, 5, 0, domainmocks.NewDealRepositoryMock(t), &fakeReconciler{}, zap.NewNop())
	assert.Equal(t, 1, pool.workers)
	assert.Equal(t, 10*time.Second, pool.scanInterval)
	assert.Equal(t, 5, cap(pool.queue))
}
