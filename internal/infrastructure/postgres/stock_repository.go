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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la entrada de stock de un producto en un vehículo.
// domain.ErrNotFound si el producto no está provisionado en ese vehículo.
func (r *StockRepo) Get(vehicleID, productID string) (*entity.StockEntry, error) {
	query := `
		SELECT vehicle_id, product_id, name, presentation, category, segment, price, quantity, updated_at
		FROM vehicle_stock WHERE vehicle_id = $1 AND product_id = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, vehicleID, productID).Scan(
		&e.VehicleID, &e.ProductID, &e.Name, &e.Presentation, &e.Category, &e.Segment,
		&e.Price, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &e, nil
}

// ListByVehicle devuelve todas las entradas de stock del vehículo.
func (r *StockRepo) ListByVehicle(vehicleID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT vehicle_id, product_id, name, presentation, category, segment, price, quantity, updated_at
		FROM vehicle_stock WHERE vehicle_id = $1
		ORDER BY name, product_id`
	rows, err := r.q.Query(context.Background(), query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(
			&e.VehicleID, &e.ProductID, &e.Name, &e.Presentation, &e.Category, &e.Segment,
			&e.Price, &e.Quantity, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Upsert carga el producto en el vehículo; si ya está cargado suma la
// cantidad y refresca los datos copiados del catálogo.
func (r *StockRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO vehicle_stock (vehicle_id, product_id, name, presentation, category, segment, price, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (vehicle_id, product_id)
		DO UPDATE SET quantity = vehicle_stock.quantity + EXCLUDED.quantity,
		              name = EXCLUDED.name,
		              presentation = EXCLUDED.presentation,
		              category = EXCLUDED.category,
		              segment = EXCLUDED.segment,
		              price = EXCLUDED.price,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.VehicleID, entry.ProductID, entry.Name, entry.Presentation,
		entry.Category, entry.Segment, entry.Price, entry.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Decrement descuenta amount con escritura condicional: el UPDATE solo
// procede si la cantidad vigente alcanza, así dos ventas concurrentes sobre
// el mismo producto nunca dejan la cantidad negativa aunque ambas hayan
// validado contra la misma lectura.
func (r *StockRepo) Decrement(vehicleID, productID string, amount int64) error {
	query := `
		UPDATE vehicle_stock
		SET quantity = quantity - $3, updated_at = now()
		WHERE vehicle_id = $1 AND product_id = $2 AND quantity >= $3`
	tag, err := r.q.Exec(context.Background(), query, vehicleID, productID, amount)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguir entre producto no provisionado y cantidad insuficiente.
		if _, err := r.Get(vehicleID, productID); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
