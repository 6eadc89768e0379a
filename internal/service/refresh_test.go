package service

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"

	"github.com/avc/drop-service/internal/domain"
	domainmocks "github.com/avc/drop-service/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seqOf(events ...domain.ChangeEvent) iter.Seq2[domain.ChangeEvent, error] {
	return func(yield func(domain.ChangeEvent, error) bool) {
		for _, event := range events {
			if !yield(event, nil) {
				return
			}
		}
	}
}

func failingSeq(err error) iter.Seq2[domain.ChangeEvent, error] {
	return func(yield func(domain.ChangeEvent, error) bool) {
		yield(domain.ChangeEvent{}, err)
	}
}

// blockingSeq ждет отмены контекста, как реальная подписка без событий
func blockingSeq(ctx context.Context) iter.Seq2[domain.ChangeEvent, error] {
	return func(yield func(domain.ChangeEvent, error) bool) {
		<-ctx.Done()
		yield(domain.ChangeEvent{}, ctx.Err())
	}
}

type updateRecorder struct {
	mu      sync.Mutex
	updates []*domain.Update
}

func (r *updateRecorder) emit(update *domain.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
	return nil
}

func (r *updateRecorder) notices() []domain.UpdateNotice {
	r.mu.Lock()
	defer r.mu.Unlock()
	var notices []domain.UpdateNotice
	for _, update := range r.updates {
		notices = append(notices, update.Notice)
	}
	return notices
}

func TestDealNotice(t *testing.T) {
	merchantID := int64(2002)
	tests := []struct {
		name     string
		event    domain.ChangeEvent
		expected domain.UpdateNotice
	}{
		{
			name:     "taken for requester",
			event:    domain.ChangeEvent{Topic: domain.TopicDeals, UserTelegramID: 1001, Status: domain.DealStatusTaken},
			expected: domain.NoticeDealTaken,
		},
		{
			name:     "requisites sent",
			event:    domain.ChangeEvent{Topic: domain.TopicDeals, UserTelegramID: 1001, Status: domain.DealStatusRequisitesSent},
			expected: domain.NoticeRequisitesReceived,
		},
		{
			name:     "waiting payment",
			event:    domain.ChangeEvent{Topic: domain.TopicDeals, UserTelegramID: 1001, Status: domain.DealStatusWaitingPayment},
			expected: domain.NoticeRequisitesReceived,
		},
		{
			name:     "completed",
			event:    domain.ChangeEvent{Topic: domain.TopicDeals, UserTelegramID: 1001, Status: domain.DealStatusCompleted},
			expected: "",
		},
		{
			name: "merchant side",
			event: domain.ChangeEvent{
				Topic: domain.TopicDeals, UserTelegramID: 5005, MerchantTelegramID: &merchantID, Status: domain.DealStatusTaken,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dealNotice(tt.event, 1001))
		})
	}
}

func TestRefresher_Watch(t *testing.T) {
	mockFeed := domainmocks.NewChangeFeedMock(t)
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	refresher := NewRefresher(mockFeed, mockDealRepo, mockUserRepo, nil, zap.NewNop())
	sess := userSession(1001)

	dealID := uuid.New()
	deals := []*domain.Deal{{ID: dealID, UserTelegramID: 1001, Status: domain.DealStatusTaken}}
	user := &domain.User{ID: 1001, TelegramID: 1001, Balance: decimal.NewFromInt(10)}

	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicDeals, int64(1001)).Return(seqOf(
		domain.ChangeEvent{Topic: domain.TopicDeals, DealID: &dealID, UserTelegramID: 1001, Status: domain.DealStatusTaken},
	)).Once()
	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicUser, int64(1001)).Return(seqOf(
		domain.ChangeEvent{Topic: domain.TopicUser, TelegramID: 1001},
	)).Once()

	// Начальный снимок и по одному перечитыванию на событие
	mockDealRepo.EXPECT().GetDealsByUser(mock.Anything, int64(1001), 20).Return(deals, nil).Times(2)
	mockUserRepo.EXPECT().GetUserByTelegramID(mock.Anything, int64(1001)).Return(user, nil).Times(2)

	recorder := &updateRecorder{}
	err := refresher.Watch(context.Background(), sess, recorder.emit)
	require.NoError(t, err)

	require.Len(t, recorder.updates, 4)
	assert.Equal(t, domain.TopicDeals, recorder.updates[0].Topic)
	assert.Empty(t, recorder.updates[0].Notice)
	assert.Equal(t, domain.TopicUser, recorder.updates[1].Topic)
	assert.True(t, decimal.NewFromInt(850).Equal(recorder.updates[1].Wallet.BalanceRUB))

	assert.ElementsMatch(t,
		[]domain.UpdateNotice{"", "", domain.NoticeDealTaken, domain.NoticeBalanceUpdated},
		recorder.notices(),
	)
}

func TestRefresher_Watch_FeedError(t *testing.T) {
	mockFeed := domainmocks.NewChangeFeedMock(t)
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	refresher := NewRefresher(mockFeed, mockDealRepo, mockUserRepo, nil, zap.NewNop())

	mockDealRepo.EXPECT().GetDealsByUser(mock.Anything, int64(1001), 20).Return(nil, nil).Once()
	mockUserRepo.EXPECT().GetUserByTelegramID(mock.Anything, int64(1001)).Return(&domain.User{TelegramID: 1001}, nil).Once()

	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicDeals, int64(1001)).
		Return(failingSeq(errors.New("listen failed"))).Once()
	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicUser, int64(1001)).
		RunAndReturn(func(ctx context.Context, _ domain.ChangeTopic, _ int64) iter.Seq2[domain.ChangeEvent, error] {
			return blockingSeq(ctx)
		}).Once()

	recorder := &updateRecorder{}
	err := refresher.Watch(context.Background(), userSession(1001), recorder.emit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen failed")
}

func TestRefresher_Watch_Cancelled(t *testing.T) {
	mockFeed := domainmocks.NewChangeFeedMock(t)
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	refresher := NewRefresher(mockFeed, mockDealRepo, mockUserRepo, nil, zap.NewNop())

	mockDealRepo.EXPECT().GetDealsByUser(mock.Anything, int64(1001), 20).Return(nil, nil).Once()
	mockUserRepo.EXPECT().GetUserByTelegramID(mock.Anything, int64(1001)).Return(&domain.User{TelegramID: 1001}, nil).Once()

	blocking := func(ctx context.Context, _ domain.ChangeTopic, _ int64) iter.Seq2[domain.ChangeEvent, error] {
		return blockingSeq(ctx)
	}
	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicDeals, int64(1001)).RunAndReturn(blocking).Once()
	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicUser, int64(1001)).RunAndReturn(blocking).Once()

	ctx, cancel := context.WithCancel(context.Background())
	recorder := &updateRecorder{}
	emit := func(update *domain.Update) error {
		_ = recorder.emit(update)
		if update.Topic == domain.TopicUser {
			// Снимок получен, клиент уходит
			cancel()
		}
		return nil
	}

	err := refresher.Watch(ctx, userSession(1001), emit)
	assert.NoError(t, err)
	assert.Len(t, recorder.updates, 2)
}

func TestRefresher_Watch_MerchantDeal(t *testing.T) {
	mockFeed := domainmocks.NewChangeFeedMock(t)
	mockDealRepo := domainmocks.NewDealRepositoryMock(t)
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	refresher := NewRefresher(mockFeed, mockDealRepo, mockUserRepo, nil, zap.NewNop())
	sess := merchantSession(2002)

	merchantID := int64(2002)
	otherMerchant := int64(3003)
	claimedID := uuid.New()
	staleID := uuid.New()
	missingID := uuid.New()
	claimed := &domain.Deal{ID: claimedID, UserTelegramID: 1001, MerchantTelegramID: &merchantID, Status: domain.DealStatusTaken}

	mockDealRepo.EXPECT().GetDealsByUser(mock.Anything, int64(2002), 20).Return(nil, nil).Once()
	mockUserRepo.EXPECT().GetUserByTelegramID(mock.Anything, int64(2002)).Return(&domain.User{TelegramID: 2002}, nil).Once()

	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicDeals, int64(2002)).Return(seqOf(
		domain.ChangeEvent{Topic: domain.TopicDeals, DealID: &claimedID, UserTelegramID: 1001, MerchantTelegramID: &merchantID, Status: domain.DealStatusTaken},
		domain.ChangeEvent{Topic: domain.TopicDeals, DealID: &staleID, UserTelegramID: 1001, MerchantTelegramID: &merchantID, Status: domain.DealStatusTaken},
		domain.ChangeEvent{Topic: domain.TopicDeals, DealID: &missingID, UserTelegramID: 1001, MerchantTelegramID: &merchantID, Status: domain.DealStatusTaken},
	)).Once()
	mockFeed.EXPECT().Subscribe(mock.Anything, domain.TopicUser, int64(2002)).Return(seqOf()).Once()

	mockDealRepo.EXPECT().GetDealByID(mock.Anything, claimedID).Return(claimed, nil).Once()
	mockDealRepo.EXPECT().GetDealByID(mock.Anything, staleID).
		Return(&domain.Deal{ID: staleID, MerchantTelegramID: &otherMerchant}, nil).Once()
	mockDealRepo.EXPECT().GetDealByID(mock.Anything, missingID).Return(nil, domain.ErrDealNotFound).Once()

	recorder := &updateRecorder{}
	err := refresher.Watch(context.Background(), sess, recorder.emit)
	require.NoError(t, err)

	// Начальный снимок сделок и кошелька, затем только взятая сделка
	require.Len(t, recorder.updates, 3)
	update := recorder.updates[2]
	assert.Equal(t, domain.TopicDeals, update.Topic)
	require.NotNil(t, update.Deal)
	assert.Equal(t, claimedID, update.Deal.ID)
	assert.Empty(t, update.Deals)
	assert.Empty(t, update.Notice)
}
