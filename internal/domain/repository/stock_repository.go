package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// StockRepository define el puerto del libro de stock por vehículo+producto.
type StockRepository interface {
	// Get obtiene la entrada de stock; domain.ErrNotFound si el producto no
	// está provisionado en ese vehículo.
	Get(vehicleID, productID string) (*entity.StockEntry, error)
	ListByVehicle(vehicleID string) ([]*entity.StockEntry, error)
	// Upsert carga o recarga el producto en el vehículo (suma cantidad si ya existe).
	Upsert(entry *entity.StockEntry) error
	// Decrement descuenta amount de forma condicional: la escritura solo
	// procede si la cantidad vigente al momento de escribir alcanza
	// (revalidación en escritura, la cantidad nunca queda negativa).
	// Retorna domain.ErrInsufficientStock sin mutar si no alcanza.
	Decrement(vehicleID, productID string, amount int64) error
}
