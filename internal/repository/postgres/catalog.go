package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogRepository реализует domain.CatalogRepository.
// Каталог ведется внешним административным процессом, здесь только чтение.
type CatalogRepository struct {
	db DBTX
}

// NewCatalogRepository создает новый CatalogRepository
func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCountries получает страны по алфавиту
func (r *CatalogRepository) GetCountries(ctx context.Context) ([]*domain.Country, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name
		 FROM countries
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get countries: %w", err)
	}
	defer rows.Close()

	var countries []*domain.Country
	for rows.Next() {
		country := &domain.Country{}
		if err := rows.Scan(&country.ID, &country.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan country: %w", err)
		}
		countries = append(countries, country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating countries: %w", err)
	}

	return countries, nil
}

// GetCountryByID получает страну по ID
func (r *CatalogRepository) GetCountryByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	country := &domain.Country{}

	err := r.db.QueryRow(ctx,
		`SELECT id, name
		 FROM countries
		 WHERE id = $1`,
		id,
	).Scan(&country.ID, &country.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("repository: failed to get country %s: %w", id, err)
	}

	return country, nil
}

// GetBanksByCountry получает банки страны по алфавиту
func (r *CatalogRepository) GetBanksByCountry(ctx context.Context, countryID uuid.UUID) ([]*domain.Bank, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, country_id, name
		 FROM banks
		 WHERE country_id = $1
		 ORDER BY name`,
		countryID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get banks for country %s: %w", countryID, err)
	}
	defer rows.Close()

	var banks []*domain.Bank
	for rows.Next() {
		bank := &domain.Bank{}
		if err := rows.Scan(&bank.ID, &bank.CountryID, &bank.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating banks: %w", err)
	}

	return banks, nil
}

// GetRequisitesByBank получает реквизиты банка в порядке хранилища
func (r *CatalogRepository) GetRequisitesByBank(ctx context.Context, bankID uuid.UUID) ([]*domain.Requisite, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, bank_id, recipient_name, card_number, min_amount, max_amount
		 FROM requisites
		 WHERE bank_id = $1`,
		bankID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get requisites for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	var requisites []*domain.Requisite
	for rows.Next() {
		req := &domain.Requisite{}
		err := rows.Scan(&req.ID, &req.BankID, &req.RecipientName, &req.CardNumber, &req.MinAmount, &req.MaxAmount)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan requisite: %w", err)
		}
		requisites = append(requisites, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating requisites: %w", err)
	}

	return requisites, nil
}

// GetRequisiteByID получает реквизит по ID
func (r *CatalogRepository) GetRequisiteByID(ctx context.Context, id uuid.UUID) (*domain.Requisite, error) {
	req := &domain.Requisite{}

	err := r.db.QueryRow(ctx,
		`SELECT id, bank_id, recipient_name, card_number, min_amount, max_amount
		 FROM requisites
		 WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.BankID, &req.RecipientName, &req.CardNumber, &req.MinAmount, &req.MaxAmount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequisiteNotFound
		}
		return nil, fmt.Errorf("repository: failed to get requisite %s: %w", id, err)
	}

	return req, nil
}
