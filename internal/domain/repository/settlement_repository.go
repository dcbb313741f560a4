package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// SettlementRepository define el puerto de persistencia de cierres diarios.
type SettlementRepository interface {
	// Get obtiene el cierre por clave (día, operador); domain.ErrNotFound si no existe.
	Get(day, operatorID string) (*entity.Settlement, error)
	// UpsertMerge guarda el cierre; si ya existe uno con la misma clave,
	// fusiona sumando cantidades por (cliente, producto) en lugar de
	// sobrescribir. La lectura-fusión-escritura debe ser atómica.
	UpsertMerge(settlement *entity.Settlement) error
}
