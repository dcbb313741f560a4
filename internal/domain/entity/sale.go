package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot multiplicadores de monedas secundarias frente a la moneda base
// (USD), capturados al momento de la venta para auditoría. Los precios y
// totales se guardan siempre en moneda base; la conversión es solo de
// presentación.
type RateSnapshot struct {
	RateBs  decimal.Decimal `json:"rate_bs"`
	RateCop decimal.Decimal `json:"rate_cop"`
}

// SaleLine representa una línea de venta. Inmutable una vez confirmada la
// venta: el precio unitario es el vigente al momento de la venta y queda
// desacoplado de cambios posteriores del catálogo.
type SaleLine struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	Category     string          `json:"category"`
	Segment      string          `json:"segment"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"` // Quantity × UnitPrice
}

// Sale representa una venta confirmada contra el stock de un vehículo.
// Invariantes: Total == suma de subtotales; al menos una línea con cantidad
// mayor a cero. Inmutable tras confirmarse; solo el cierre diario la consume
// y elimina.
type Sale struct {
	ID         string
	Date       time.Time
	OperatorID string
	Client     ClientRef
	Vehicle    VehicleRef
	Lines      []SaleLine
	Total      decimal.Decimal
	Rates      RateSnapshot
	CreatedAt  time.Time
}

// ComputeTotal devuelve la suma de los subtotales de las líneas.
func (s *Sale) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
