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

const uniqueViolation = "23505"

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func (r *CurrencyRepository) GetAll(ctx context.Context) ([]domain.Currency, error) {
	const q = `select id, name, code, sign from currencies order by id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0, 32)
	for rows.Next() {
		var c domain.Currency
		if err = rows.Scan(&c.ID, &c.Name, &c.Code, &c.Sign); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}

// GetOne applies every set filter field, so a lookup with both id and code
// only matches a record satisfying both.
func (r *CurrencyRepository) GetOne(ctx context.Context, filter domain.CurrencyFilter) (domain.Currency, error) {
	const q = `
		select id, name, code, sign from currencies
		where ($1::bigint is null or id = $1)
		  and ($2::text is null or code = $2);
	`

	var c domain.Currency
	if err := r.pool.QueryRow(ctx, q, filter.ID, filter.Code).Scan(
		&c.ID,
		&c.Name,
		&c.Code,
		&c.Sign,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Currency{}, domain.ErrCurrencyNotFound
		}
		return domain.Currency{}, fmt.Errorf("failed to select currency: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepository) Insert(ctx context.Context, name, code, sign string) (domain.Currency, error) {
	const q = `
		insert into currencies (name, code, sign) values ($1, $2, $3)
		returning id, name, code, sign;
	`

	var c domain.Currency
	if err := r.pool.QueryRow(ctx, q, name, code, sign).Scan(&c.ID, &c.Name, &c.Code, &c.Sign); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Currency{}, domain.ErrCurrencyExists
		}
		return domain.Currency{}, fmt.Errorf("failed to insert currency %q: %w", code, err)
	}
	return c, nil
}

func (r *CurrencyRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `select count(*) from currencies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return n, nil
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}
