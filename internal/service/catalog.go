package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/metrics"
	"github.com/google/uuid"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	catalogRepo domain.CatalogRepository
	metrics     *metrics.DealMetrics
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(catalogRepo domain.CatalogRepository, dealMetrics *metrics.DealMetrics) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		metrics:     dealMetrics,
	}
}

// GetCountries получает список стран
func (s *CatalogService) GetCountries(ctx context.Context) ([]*domain.Country, error) {
	countries, err := s.catalogRepo.GetCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get countries: %w", err)
	}

	return countries, nil
}

// GetBanks получает банки страны
func (s *CatalogService) GetBanks(ctx context.Context, countryID uuid.UUID) ([]*domain.Bank, error) {
	banks, err := s.catalogRepo.GetBanksByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get banks for country %s: %w", countryID, err)
	}

	return banks, nil
}

// ResolveRequisite выбирает реквизит банка.
// Берется первый реквизит в порядке хранилища, лимиты min/max не учитываются.
func (s *CatalogService) ResolveRequisite(ctx context.Context, bankID uuid.UUID) (*domain.Requisite, error) {
	requisites, err := s.catalogRepo.GetRequisitesByBank(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get requisites for bank %s: %w", bankID, err)
	}

	if len(requisites) == 0 {
		s.metrics.RecordRequisiteResolution(false)
		return nil, domain.ErrNoRequisiteAvailable
	}

	s.metrics.RecordRequisiteResolution(true)
	return requisites[0], nil
}

// FormatCardNumber группирует цифры номера карты по четыре для отображения
func FormatCardNumber(card string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, card)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
