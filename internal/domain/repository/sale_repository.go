package repository

import (
	"time"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia de ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// ListByOperatorAndRange devuelve las ventas del operador con
	// Date en [from, to] (ambos inclusive), ordenadas por fecha.
	ListByOperatorAndRange(operatorID string, from, to time.Time) ([]*entity.Sale, error)
	// Delete retira una venta ya consolidada. Solo el cierre diario la invoca.
	Delete(id string) error
}
