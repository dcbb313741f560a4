package dto

import "github.com/shopspring/decimal"

// LoadStockItem un producto del catálogo a cargar en el vehículo con su
// cantidad inicial (o a sumar en una recarga).
type LoadStockItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// LoadStockRequest carga de camión: asignación de productos del catálogo al
// stock de un vehículo.
type LoadStockRequest struct {
	Items []LoadStockItem `json:"items"`
}

// StockEntryResponse entrada de stock de un vehículo.
type StockEntryResponse struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	Category     string          `json:"category"`
	Segment      string          `json:"segment"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
}

// RatesRequest actualización de tasas de cambio.
type RatesRequest struct {
	RateBs  decimal.Decimal `json:"rate_bs"`
	RateCop decimal.Decimal `json:"rate_cop"`
}

// RatesResponse tasas de cambio vigentes (multiplicadores frente a la moneda base).
type RatesResponse struct {
	RateBs  decimal.Decimal `json:"rate_bs"`
	RateCop decimal.Decimal `json:"rate_cop"`
}
