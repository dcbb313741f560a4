package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo implementación de RateRepository. Las tasas viven en una única
// fila de configuración.
type RateRepo struct {
	q Querier
}

// NewRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

// Get devuelve las tasas vigentes; domain.ErrNotFound si nunca se configuraron.
func (r *RateRepo) Get() (entity.RateSnapshot, error) {
	query := `SELECT rate_bs, rate_cop FROM exchange_rates WHERE id = 1`
	var rates entity.RateSnapshot
	err := r.q.QueryRow(context.Background(), query).Scan(&rates.RateBs, &rates.RateCop)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RateSnapshot{}, domain.ErrNotFound
		}
		return entity.RateSnapshot{}, fmt.Errorf("get rates: %w", err)
	}
	return rates, nil
}

// Put guarda las tasas nuevas.
func (r *RateRepo) Put(rates entity.RateSnapshot) error {
	query := `
		INSERT INTO exchange_rates (id, rate_bs, rate_cop, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id)
		DO UPDATE SET rate_bs = EXCLUDED.rate_bs, rate_cop = EXCLUDED.rate_cop, updated_at = now()`
	if _, err := r.q.Exec(context.Background(), query, rates.RateBs, rates.RateCop); err != nil {
		return fmt.Errorf("put rates: %w", err)
	}
	return nil
}
