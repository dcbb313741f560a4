package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

var _ repository.SettlementRepository = (*SettlementRepo)(nil)

// SettlementRepo implementación de SettlementRepository. Mantiene el pool
// (no un Querier) porque UpsertMerge abre su propia transacción: la fusión
// leer-sumar-escribir debe ser atómica frente a cierres concurrentes.
type SettlementRepo struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository construye el adaptador.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

// Get obtiene el cierre por (día, operador); domain.ErrNotFound si no existe.
func (r *SettlementRepo) Get(day, operatorID string) (*entity.Settlement, error) {
	return getSettlement(r.pool, day, operatorID)
}

// UpsertMerge guarda el cierre; si ya existe uno con la misma clave fusiona
// sumando cantidades por (cliente, producto) en lugar de sobrescribir, para
// que cierres repetidos del mismo día nunca subcuenten. La fila existente se
// bloquea (SELECT FOR UPDATE) durante la fusión.
func (r *SettlementRepo) UpsertMerge(settlement *entity.Settlement) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := getSettlementForUpdate(tx, settlement.Day, settlement.OperatorID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	merged := settlement
	if existing != nil {
		existing.Merge(settlement)
		merged = existing
	}

	clientsJSON, err := json.Marshal(merged.Clients)
	if err != nil {
		return fmt.Errorf("serializar matriz: %w", err)
	}
	itemsJSON, err := json.Marshal(merged.Items)
	if err != nil {
		return fmt.Errorf("serializar metadatos: %w", err)
	}
	query := `
		INSERT INTO settlements (day, operator_id, closed_at, clients, items)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (day, operator_id)
		DO UPDATE SET closed_at = EXCLUDED.closed_at,
		              clients = EXCLUDED.clients,
		              items = EXCLUDED.items`
	if _, err := tx.Exec(ctx, query,
		merged.Day, merged.OperatorID, merged.ClosedAt, clientsJSON, itemsJSON,
	); err != nil {
		return fmt.Errorf("upsert settlement: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func getSettlement(q Querier, day, operatorID string) (*entity.Settlement, error) {
	query := `
		SELECT day, operator_id, closed_at, clients, items
		FROM settlements WHERE day = $1 AND operator_id = $2`
	return scanSettlement(q.QueryRow(context.Background(), query, day, operatorID))
}

func getSettlementForUpdate(q Querier, day, operatorID string) (*entity.Settlement, error) {
	query := `
		SELECT day, operator_id, closed_at, clients, items
		FROM settlements WHERE day = $1 AND operator_id = $2
		FOR UPDATE`
	return scanSettlement(q.QueryRow(context.Background(), query, day, operatorID))
}

func scanSettlement(row pgx.Row) (*entity.Settlement, error) {
	var s entity.Settlement
	var clientsJSON, itemsJSON []byte
	if err := row.Scan(&s.Day, &s.OperatorID, &s.ClosedAt, &clientsJSON, &itemsJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get settlement: %w", err)
	}
	if err := json.Unmarshal(clientsJSON, &s.Clients); err != nil {
		return nil, fmt.Errorf("deserializar matriz: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("deserializar metadatos: %w", err)
	}
	return &s, nil
}
