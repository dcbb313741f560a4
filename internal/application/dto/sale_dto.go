package dto

import "github.com/shopspring/decimal"

// Estados del resultado de una venta.
const (
	SaleStatusCommitted = "COMMITTED"
	// SaleStatusPartial aplica solo a almacenes sin transacciones multi-clave:
	// la venta quedó persistida pero uno o más decrementos de stock fallaron.
	// Nunca debe tratarse como éxito total; requiere conciliación manual.
	SaleStatusPartial = "PARTIAL_COMMIT"
)

// CommitSaleLineRequest una línea solicitada (cantidad pedida de un producto).
type CommitSaleLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CommitSaleRequest entrada para confirmar una venta.
type CommitSaleRequest struct {
	ClientID  string                  `json:"client_id"`
	VehicleID string                  `json:"vehicle_id"`
	Lines     []CommitSaleLineRequest `json:"lines"`
}

// SaleLineResult línea confirmada con el resultado de su decremento de stock.
type SaleLineResult struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Applied      bool            `json:"applied"`
	Error        string          `json:"error,omitempty"`
}

// SaleResponse resultado de una venta confirmada.
type SaleResponse struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"`
	OperatorID string           `json:"operator_id"`
	ClientID   string           `json:"client_id"`
	ClientName string           `json:"client_name"`
	VehicleID  string           `json:"vehicle_id"`
	Status     string           `json:"status"`
	Lines      []SaleLineResult `json:"lines"`
	Total      decimal.Decimal  `json:"total"`
	RateBs     decimal.Decimal  `json:"rate_bs"`
	RateCop    decimal.Decimal  `json:"rate_cop"`
}
