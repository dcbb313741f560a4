package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Las referencias embebidas, las líneas y el snapshot de tasas se guardan
// como JSONB: la venta es un documento inmutable, no se consulta por línea.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta completa.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	clientJSON, err := json.Marshal(sale.Client)
	if err != nil {
		return fmt.Errorf("serializar cliente: %w", err)
	}
	vehicleJSON, err := json.Marshal(sale.Vehicle)
	if err != nil {
		return fmt.Errorf("serializar vehículo: %w", err)
	}
	linesJSON, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("serializar líneas: %w", err)
	}
	ratesJSON, err := json.Marshal(sale.Rates)
	if err != nil {
		return fmt.Errorf("serializar tasas: %w", err)
	}
	query := `
		INSERT INTO sales (id, operator_id, date, client, vehicle, lines, total, rates, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.OperatorID, sale.Date, clientJSON, vehicleJSON, linesJSON,
		sale.Total, ratesJSON, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("venta duplicada: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, operator_id, date, client, vehicle, lines, total, rates, created_at
		FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// ListByOperatorAndRange devuelve las ventas del operador con date en
// [from, to], ordenadas por fecha.
func (r *SaleRepo) ListByOperatorAndRange(operatorID string, from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, operator_id, date, client, vehicle, lines, total, rates, created_at
		FROM sales
		WHERE operator_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id`
	rows, err := r.q.Query(context.Background(), query, operatorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// Delete retira una venta ya consolidada.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var clientJSON, vehicleJSON, linesJSON, ratesJSON []byte
	if err := row.Scan(
		&s.ID, &s.OperatorID, &s.Date, &clientJSON, &vehicleJSON, &linesJSON,
		&s.Total, &ratesJSON, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(clientJSON, &s.Client); err != nil {
		return nil, fmt.Errorf("deserializar cliente: %w", err)
	}
	if err := json.Unmarshal(vehicleJSON, &s.Vehicle); err != nil {
		return nil, fmt.Errorf("deserializar vehículo: %w", err)
	}
	if err := json.Unmarshal(linesJSON, &s.Lines); err != nil {
		return nil, fmt.Errorf("deserializar líneas: %w", err)
	}
	if err := json.Unmarshal(ratesJSON, &s.Rates); err != nil {
		return nil, fmt.Errorf("deserializar tasas: %w", err)
	}
	return &s, nil
}
