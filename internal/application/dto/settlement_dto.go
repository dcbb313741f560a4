package dto

// Estados del resultado de un cierre diario.
const (
	SettlementStatusClosed             = "CLOSED"
	SettlementStatusNoSales            = "NO_SALES_TO_CLOSE"
	SettlementStatusRetirementFailures = "CLOSED_WITH_RETIREMENT_FAILURES"
)

// RetirementFailure una venta ya consolidada que no pudo eliminarse. El
// cierre es recuperable repitiendo la operación: la fusión por suma del
// cierre tolera re-consolidar.
type RetirementFailure struct {
	SaleID string `json:"sale_id"`
	Error  string `json:"error"`
}

// SettlementClientRow acumulado de un cliente en la matriz del cierre.
type SettlementClientRow struct {
	ClientID   string           `json:"client_id"`
	ClientName string           `json:"client_name"`
	Quantities map[string]int64 `json:"quantities"` // product id -> cantidad
}

// SettlementItemColumn metadatos snapshot de una columna de producto.
type SettlementItemColumn struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Presentation string `json:"presentation"`
}

// SettlementResult resultado de un cierre diario.
type SettlementResult struct {
	Status       string                 `json:"status"`
	Day          string                 `json:"day"`
	OperatorID   string                 `json:"operator_id"`
	Clients      []SettlementClientRow  `json:"clients,omitempty"`
	Items        []SettlementItemColumn `json:"items,omitempty"` // en el orden de columnas del reporte
	RetiredCount int                    `json:"retired_count"`
	Failures     []RetirementFailure    `json:"failures,omitempty"`
}
