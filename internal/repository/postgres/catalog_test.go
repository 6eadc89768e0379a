package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_GetCountries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.New(), "Казахстан").
			AddRow(uuid.New(), "Россия")

		mock.ExpectQuery(`SELECT id, name FROM countries ORDER BY name`).
			WillReturnRows(rows)

		countries, err := repo.GetCountries(ctx)
		require.NoError(t, err)
		require.Len(t, countries, 2)
		assert.Equal(t, "Казахстан", countries[0].Name)
		assert.Equal(t, "Россия", countries[1].Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM countries`).
			WillReturnError(errors.New("database error"))

		countries, err := repo.GetCountries(ctx)
		assert.Error(t, err)
		assert.Nil(t, countries)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_GetCountryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM countries WHERE id`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(id, "Россия"))

		country, err := repo.GetCountryByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, country.ID)
		assert.Equal(t, "Россия", country.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM countries WHERE id`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		country, err := repo.GetCountryByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrCountryNotFound)
		assert.Nil(t, country)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_GetBanksByCountry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	countryID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "country_id", "name"}).
		AddRow(uuid.New(), countryID, "Альфа-Банк").
		AddRow(uuid.New(), countryID, "Тинькофф")

	mock.ExpectQuery(`FROM banks WHERE country_id`).
		WithArgs(countryID).
		WillReturnRows(rows)

	banks, err := repo.GetBanksByCountry(ctx, countryID)
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "Альфа-Банк", banks[0].Name)
	assert.Equal(t, countryID, banks[1].CountryID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetRequisitesByBank(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	columns := []string{"id", "bank_id", "recipient_name", "card_number", "min_amount", "max_amount"}

	t.Run("Store order preserved", func(t *testing.T) {
		bankID := uuid.New()
		first := uuid.New()
		second := uuid.New()

		rows := pgxmock.NewRows(columns).
			AddRow(first, bankID, "Иван И.", "2200700012345678", decimal.NewFromInt(1000), decimal.NewFromInt(50000)).
			AddRow(second, bankID, "Петр П.", "2200700087654321", decimal.NewFromInt(500), decimal.NewFromInt(10000))

		mock.ExpectQuery(`FROM requisites WHERE bank_id`).
			WithArgs(bankID).
			WillReturnRows(rows)

		requisites, err := repo.GetRequisitesByBank(ctx, bankID)
		require.NoError(t, err)
		require.Len(t, requisites, 2)
		assert.Equal(t, first, requisites[0].ID)
		assert.Equal(t, "2200700012345678", requisites[0].CardNumber)
		assert.True(t, decimal.NewFromInt(50000).Equal(requisites[0].MaxAmount))
		assert.Equal(t, second, requisites[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No requisites", func(t *testing.T) {
		bankID := uuid.New()

		mock.ExpectQuery(`FROM requisites WHERE bank_id`).
			WithArgs(bankID).
			WillReturnRows(pgxmock.NewRows(columns))

		requisites, err := repo.GetRequisitesByBank(ctx, bankID)
		require.NoError(t, err)
		assert.Empty(t, requisites)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_GetRequisiteByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	columns := []string{"id", "bank_id", "recipient_name", "card_number", "min_amount", "max_amount"}

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		bankID := uuid.New()

		mock.ExpectQuery(`FROM requisites WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(id, bankID, "Иван И.", "2200700012345678", decimal.NewFromInt(1000), decimal.NewFromInt(50000)))

		req, err := repo.GetRequisiteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, req.ID)
		assert.Equal(t, bankID, req.BankID)
		assert.True(t, decimal.NewFromInt(1000).Equal(req.MinAmount))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM requisites WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(columns))

		req, err := repo.GetRequisiteByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRequisiteNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, req)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`FROM requisites WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(errors.New("connection reset"))

		req, err := repo.GetRequisiteByID(ctx, id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, req)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
