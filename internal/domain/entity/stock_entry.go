package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa un producto cargado en un vehículo con su cantidad
// disponible. La cantidad es un entero y nunca puede quedar negativa: toda
// operación que la dejaría por debajo de cero se rechaza, no se recorta.
// Solo la mutan el decremento por venta y la recarga del camión.
type StockEntry struct {
	VehicleID    string
	ProductID    string
	Name         string // copia del catálogo al momento de la carga
	Presentation string
	Category     string
	Segment      string
	Price        decimal.Decimal // precio unitario en moneda base
	Quantity     int64
	UpdatedAt    time.Time
}
