package sales

import (
	"context"

	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. En almacenes con transacciones multi-clave
// (PostgreSQL) garantiza que la persistencia de la venta y los decrementos
// de stock sean atómicos: o todo queda escrito o nada. Una implementación
// sobre un almacén sin transacciones ejecuta fn sin rollback, y el caso de
// uso reporta los decrementos fallidos como commit parcial.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error) error
}
