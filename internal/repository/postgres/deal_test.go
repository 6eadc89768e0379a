package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dealColumnNames = []string{
	"id", "user_telegram_id", "merchant_telegram_id", "country_id", "country_name", "bank_name",
	"amount_rub", "time_minutes", "status", "timer_until", "recipient_name", "card_number",
	"created_at", "updated_at",
}

func addDealRow(rows *pgxmock.Rows, deal *domain.Deal) *pgxmock.Rows {
	return rows.AddRow(
		deal.ID, deal.UserTelegramID, deal.MerchantTelegramID, deal.CountryID, deal.CountryName,
		deal.BankName, deal.AmountRub, deal.TimeMinutes, deal.Status, deal.TimerUntil,
		deal.RecipientName, deal.CardNumber, deal.CreatedAt, deal.UpdatedAt,
	)
}

func newPendingDeal() *domain.Deal {
	countryID := uuid.New()
	now := time.Now()
	return &domain.Deal{
		ID:             uuid.New(),
		UserTelegramID: 1001,
		CountryID:      &countryID,
		CountryName:    "Россия",
		BankName:       "Сбербанк",
		AmountRub:      decimal.NewFromInt(5000),
		TimeMinutes:    30,
		Status:         domain.DealStatusPendingMerchants,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestDealRepository_CreateDeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deal := newPendingDeal()

		mock.ExpectQuery(`INSERT INTO deals`).
			WithArgs(deal.UserTelegramID, deal.CountryID, deal.CountryName, deal.BankName, deal.AmountRub,
				deal.TimeMinutes, domain.DealStatusPendingMerchants, deal.RecipientName, deal.CardNumber).
			WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), deal))

		created, err := repo.CreateDeal(ctx, deal)
		require.NoError(t, err)
		assert.Equal(t, deal.ID, created.ID)
		assert.Equal(t, domain.DealStatusPendingMerchants, created.Status)
		assert.Nil(t, created.MerchantTelegramID)
		assert.Nil(t, created.TimerUntil)
		assert.True(t, deal.AmountRub.Equal(created.AmountRub))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown country", func(t *testing.T) {
		deal := newPendingDeal()

		mock.ExpectQuery(`INSERT INTO deals`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		created, err := repo.CreateDeal(ctx, deal)
		assert.ErrorIs(t, err, domain.ErrCountryNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Check constraint", func(t *testing.T) {
		deal := newPendingDeal()

		mock.ExpectQuery(`INSERT INTO deals`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23514"})

		_, err := repo.CreateDeal(ctx, deal)
		assert.ErrorIs(t, err, domain.ErrValidation)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDealRepository_GetDealByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deal := newPendingDeal()

		mock.ExpectQuery(`FROM deals WHERE id`).
			WithArgs(deal.ID).
			WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), deal))

		found, err := repo.GetDealByID(ctx, deal.ID)
		require.NoError(t, err)
		assert.Equal(t, deal.ID, found.ID)
		assert.Equal(t, deal.BankName, found.BankName)
		require.NotNil(t, found.CountryID)
		assert.Equal(t, *deal.CountryID, *found.CountryID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM deals WHERE id`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(dealColumnNames))

		found, err := repo.GetDealByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrDealNotFound)
		assert.Nil(t, found)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM deals WHERE id`).
			WithArgs(id).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetDealByID(ctx, id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get deal")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDealRepository_GetDealsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	t.Run("Newest first", func(t *testing.T) {
		older := newPendingDeal()
		newer := newPendingDeal()
		newer.CreatedAt = older.CreatedAt.Add(time.Minute)

		rows := pgxmock.NewRows(dealColumnNames)
		addDealRow(rows, newer)
		addDealRow(rows, older)

		mock.ExpectQuery(`FROM deals WHERE user_telegram_id`).
			WithArgs(int64(1001), 20).
			WillReturnRows(rows)

		deals, err := repo.GetDealsByUser(ctx, 1001, 20)
		require.NoError(t, err)
		require.Len(t, deals, 2)
		assert.Equal(t, newer.ID, deals[0].ID)
		assert.Equal(t, older.ID, deals[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`FROM deals WHERE user_telegram_id`).
			WithArgs(int64(42), 20).
			WillReturnRows(pgxmock.NewRows(dealColumnNames))

		deals, err := repo.GetDealsByUser(ctx, 42, 20)
		require.NoError(t, err)
		assert.Empty(t, deals)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDealRepository_GetPendingDeals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	deal := newPendingDeal()

	mock.ExpectQuery(`FROM deals WHERE status`).
		WithArgs(domain.DealStatusPendingMerchants, 20).
		WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), deal))

	deals, err := repo.GetPendingDeals(ctx, 20)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, domain.DealStatusPendingMerchants, deals[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepository_ClaimDeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	t.Run("Success with explicit minutes", func(t *testing.T) {
		deal := newPendingDeal()
		merchantID := int64(2002)
		minutes := 45
		timerUntil := time.Now().Add(45 * time.Minute)

		claimed := *deal
		claimed.Status = domain.DealStatusTaken
		claimed.MerchantTelegramID = &merchantID
		claimed.TimeMinutes = minutes
		claimed.TimerUntil = &timerUntil

		mock.ExpectQuery(`UPDATE deals SET merchant_telegram_id .* COALESCE\(\$3::int, time_minutes\)`).
			WithArgs(merchantID, domain.DealStatusTaken, &minutes, deal.ID, domain.DealStatusPendingMerchants).
			WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), &claimed))

		result, err := repo.ClaimDeal(ctx, deal.ID, merchantID, &minutes)
		require.NoError(t, err)
		assert.Equal(t, domain.DealStatusTaken, result.Status)
		require.NotNil(t, result.MerchantTelegramID)
		assert.Equal(t, merchantID, *result.MerchantTelegramID)
		assert.Equal(t, 45, result.TimeMinutes)
		require.NotNil(t, result.TimerUntil)
		assert.True(t, timerUntil.Equal(*result.TimerUntil))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Keeps deal term without minutes", func(t *testing.T) {
		deal := newPendingDeal()
		merchantID := int64(2002)
		timerUntil := time.Now().Add(time.Duration(deal.TimeMinutes) * time.Minute)

		claimed := *deal
		claimed.Status = domain.DealStatusTaken
		claimed.MerchantTelegramID = &merchantID
		claimed.TimerUntil = &timerUntil

		mock.ExpectQuery(`UPDATE deals SET merchant_telegram_id`).
			WithArgs(merchantID, domain.DealStatusTaken, (*int)(nil), deal.ID, domain.DealStatusPendingMerchants).
			WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), &claimed))

		result, err := repo.ClaimDeal(ctx, deal.ID, merchantID, nil)
		require.NoError(t, err)
		assert.Equal(t, deal.TimeMinutes, result.TimeMinutes)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already claimed", func(t *testing.T) {
		id := uuid.New()

		// Условие status = pending_merchants не выполнилось, строк нет
		mock.ExpectQuery(`UPDATE deals SET merchant_telegram_id`).
			WithArgs(int64(3003), domain.DealStatusTaken, (*int)(nil), id, domain.DealStatusPendingMerchants).
			WillReturnRows(pgxmock.NewRows(dealColumnNames))

		result, err := repo.ClaimDeal(ctx, id, 3003, nil)
		assert.ErrorIs(t, err, domain.ErrClaimConflict)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

var payableStatusNames = []string{"taken", "requisites_sent", "waiting_payment"}

func TestDealRepository_MarkCheckSent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	t.Run("Advanced", func(t *testing.T) {
		deal := newPendingDeal()
		deal.Status = domain.DealStatusCheckSent

		mock.ExpectQuery(`UPDATE deals SET status`).
			WithArgs(domain.DealStatusCheckSent, deal.ID, payableStatusNames).
			WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), deal))

		result, err := repo.MarkCheckSent(ctx, deal.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DealStatusCheckSent, result.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unchanged", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`UPDATE deals SET status`).
			WithArgs(domain.DealStatusCheckSent, id, payableStatusNames).
			WillReturnRows(pgxmock.NewRows(dealColumnNames))

		result, err := repo.MarkCheckSent(ctx, id)
		assert.ErrorIs(t, err, domain.ErrStatusUnchanged)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDealRepository_GetDealsAwaitingCheckAdvance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDealRepository(mock)
	ctx := context.Background()

	deal := newPendingDeal()
	deal.Status = domain.DealStatusTaken

	mock.ExpectQuery(`EXISTS`).
		WithArgs(payableStatusNames, 50).
		WillReturnRows(addDealRow(pgxmock.NewRows(dealColumnNames), deal))

	deals, err := repo.GetDealsAwaitingCheckAdvance(ctx, 50)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, deal.ID, deals[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
