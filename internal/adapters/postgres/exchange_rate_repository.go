package postgres

import (
	"context"
	"errors"
	"fmt"

	"currency-exchange/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

type ExchangeRateRepository struct {
	pool *pgxpool.Pool
}

func (r *ExchangeRateRepository) GetAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	const q = `
		select er.id, er.rate,
		       bc.id, bc.name, bc.code, bc.sign,
		       tc.id, tc.name, tc.code, tc.sign
		from exchange_rates er
		join currencies bc on bc.id = er.base_currency_id
		join currencies tc on tc.id = er.target_currency_id
		order by er.id;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.ExchangeRate, 0, 32)
	for rows.Next() {
		var er domain.ExchangeRate
		if err = rows.Scan(
			&er.ID, &er.Rate,
			&er.BaseCurrency.ID, &er.BaseCurrency.Name, &er.BaseCurrency.Code, &er.BaseCurrency.Sign,
			&er.TargetCurrency.ID, &er.TargetCurrency.Name, &er.TargetCurrency.Code, &er.TargetCurrency.Sign,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates = append(rates, er)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return rates, nil
}

func (r *ExchangeRateRepository) GetByPair(ctx context.Context, baseID, targetID int64) (domain.RateEdge, bool, error) {
	const q = `
		select id, base_currency_id, target_currency_id, rate
		from exchange_rates
		where base_currency_id = $1 and target_currency_id = $2;
	`

	var edge domain.RateEdge
	if err := r.pool.QueryRow(ctx, q, baseID, targetID).Scan(
		&edge.ID,
		&edge.BaseCurrencyID,
		&edge.TargetCurrencyID,
		&edge.Rate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateEdge{}, false, nil
		}
		return domain.RateEdge{}, false, fmt.Errorf("failed to select rate for pair %d/%d: %w", baseID, targetID, err)
	}
	return edge, true, nil
}

func (r *ExchangeRateRepository) Insert(ctx context.Context, baseID, targetID int64, rate float64) (domain.RateEdge, error) {
	const q = `
		insert into exchange_rates (base_currency_id, target_currency_id, rate)
		values ($1, $2, $3)
		returning id, base_currency_id, target_currency_id, rate;
	`

	var edge domain.RateEdge
	if err := r.pool.QueryRow(ctx, q, baseID, targetID, rate).Scan(
		&edge.ID,
		&edge.BaseCurrencyID,
		&edge.TargetCurrencyID,
		&edge.Rate,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return domain.RateEdge{}, domain.ErrExchangeRateExists
			case foreignKeyViolation:
				// The edge references a currency id with no record behind it.
				return domain.RateEdge{}, domain.ErrCurrencyNotFound
			}
		}
		return domain.RateEdge{}, fmt.Errorf("failed to insert rate for pair %d/%d: %w", baseID, targetID, err)
	}
	return edge, nil
}

func (r *ExchangeRateRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `select count(*) from exchange_rates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count exchange rates: %w", err)
	}
	return n, nil
}

func NewExchangeRateRepository(pool *pgxpool.Pool) *ExchangeRateRepository {
	return &ExchangeRateRepository{pool: pool}
}
