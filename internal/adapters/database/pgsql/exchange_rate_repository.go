package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements repositories.ExchangeRateRepository
// using pgxpool.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// FindExchangeRate retrieves the stored rate for a target currency.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, targetCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			base_currency_code, target_currency_code, rate, fetched_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE target_currency_code = $1
	`
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, query, targetCode).Scan(
		&rate.BaseCurrencyCode, &rate.TargetCurrencyCode, &rate.Rate, &rate.FetchedAt,
		&rate.CreatedAt, &rate.CreatedBy, &rate.LastUpdatedAt, &rate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves every stored rate ordered by target code.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT
			base_currency_code, target_currency_code, rate, fetched_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		ORDER BY target_currency_code
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		var rate domain.ExchangeRate
		err := row.Scan(
			&rate.BaseCurrencyCode, &rate.TargetCurrencyCode, &rate.Rate, &rate.FetchedAt,
			&rate.CreatedAt, &rate.CreatedBy, &rate.LastUpdatedAt, &rate.LastUpdatedBy,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return rates, nil
}

// UpsertExchangeRates writes the batch inside a single transaction so a
// failing refresh can never leave a half-updated table.
func (r *PgxExchangeRateRepository) UpsertExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rate upsert transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO exchange_rates (
			base_currency_code, target_currency_code, rate, fetched_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (base_currency_code, target_currency_code) DO UPDATE SET
			rate = EXCLUDED.rate,
			fetched_at = EXCLUDED.fetched_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	for _, rate := range rates {
		_, err := tx.Exec(ctx, query,
			rate.BaseCurrencyCode, rate.TargetCurrencyCode, rate.Rate, rate.FetchedAt,
			rate.CreatedAt, rate.CreatedBy, rate.LastUpdatedAt, rate.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("error upserting exchange rate %s: %w", rate.TargetCurrencyCode, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rate upsert transaction: %w", err)
	}
	return nil
}
