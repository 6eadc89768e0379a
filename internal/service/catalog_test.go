package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/drop-service/internal/domain"
	domainmocks "github.com/avc/drop-service/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetCountriesAndBanks(t *testing.T) {
	mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
	svc := NewCatalogService(mockCatalogRepo, nil)
	ctx := context.Background()

	t.Run("Countries", func(t *testing.T) {
		countries := []*domain.Country{{ID: uuid.New(), Name: "Россия"}}
		mockCatalogRepo.EXPECT().GetCountries(mock.Anything).Return(countries, nil).Once()

		result, err := svc.GetCountries(ctx)
		require.NoError(t, err)
		assert.Equal(t, countries, result)
	})

	t.Run("Banks", func(t *testing.T) {
		countryID := uuid.New()
		banks := []*domain.Bank{{ID: uuid.New(), CountryID: countryID, Name: "Сбербанк"}}
		mockCatalogRepo.EXPECT().GetBanksByCountry(mock.Anything, countryID).Return(banks, nil).Once()

		result, err := svc.GetBanks(ctx, countryID)
		require.NoError(t, err)
		assert.Equal(t, banks, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mockCatalogRepo.EXPECT().GetCountries(mock.Anything).Return(nil, errors.New("db error")).Once()

		result, err := svc.GetCountries(ctx)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCatalogService_ResolveRequisite(t *testing.T) {
	mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
	svc := NewCatalogService(mockCatalogRepo, nil)
	ctx := context.Background()

	t.Run("First requisite wins", func(t *testing.T) {
		bankID := uuid.New()
		first := &domain.Requisite{ID: uuid.New(), BankID: bankID, CardNumber: "2200700012345678"}
		second := &domain.Requisite{ID: uuid.New(), BankID: bankID, CardNumber: "2200700087654321"}

		mockCatalogRepo.EXPECT().GetRequisitesByBank(mock.Anything, bankID).
			Return([]*domain.Requisite{first, second}, nil).Once()

		requisite, err := svc.ResolveRequisite(ctx, bankID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, requisite.ID)
	})

	t.Run("Bank without requisites", func(t *testing.T) {
		bankID := uuid.New()
		mockCatalogRepo.EXPECT().GetRequisitesByBank(mock.Anything, bankID).Return(nil, nil).Once()

		requisite, err := svc.ResolveRequisite(ctx, bankID)
		assert.ErrorIs(t, err, domain.ErrNoRequisiteAvailable)
		assert.Nil(t, requisite)
	})

	t.Run("Database error", func(t *testing.T) {
		bankID := uuid.New()
		mockCatalogRepo.EXPECT().GetRequisitesByBank(mock.Anything, bankID).Return(nil, errors.New("db error")).Once()

		_, err := svc.ResolveRequisite(ctx, bankID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNoRequisiteAvailable)
	})
}

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		card     string
		expected string
	}{
		{card: "2200700012345678", expected: "2200 7000 1234 5678"},
		{card: "2200 7000 1234 5678", expected: "2200 7000 1234 5678"},
		{card: "4276-1600-1234", expected: "4276 1600 1234"},
		{card: "12345", expected: "1234 5"},
		{card: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCardNumber(tt.card))
		})
	}
}
