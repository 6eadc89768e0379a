package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_GetUSDRate(t *testing.T) {
	defaultRate := decimal.NewFromInt(85)

	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		expected decimal.Decimal
		wantErr  bool
	}{
		{
			name: "stored rate",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM settings WHERE key`).
					WithArgs("usd_rate").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("92.5"))
			},
			expected: decimal.RequireFromString("92.5"),
		},
		{
			name: "missing row falls back to default",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM settings WHERE key`).
					WithArgs("usd_rate").
					WillReturnRows(pgxmock.NewRows([]string{"value"}))
			},
			expected: defaultRate,
		},
		{
			name: "garbage value falls back to default",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM settings WHERE key`).
					WithArgs("usd_rate").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("n/a"))
			},
			expected: defaultRate,
		},
		{
			name: "non positive value falls back to default",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM settings WHERE key`).
					WithArgs("usd_rate").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("0"))
			},
			expected: defaultRate,
		},
		{
			name: "database error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM settings WHERE key`).
					WithArgs("usd_rate").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			repo := NewSettingsRepository(mock, defaultRate)

			rate, err := repo.GetUSDRate(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(rate), "expected %s, got %s", tt.expected, rate)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
