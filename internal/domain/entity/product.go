package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El precio base está en la
// moneda base (USD); las monedas secundarias son solo conversión de
// presentación vía RateSnapshot. El catálogo solo se usa para cargar
// vehículos y resolver filtros; las ventas y cierres nunca lo mutan.
type Product struct {
	ID           string
	Name         string
	Presentation string // ej. "caja 12 und", "bulto 25 kg"
	Category     string // rubro
	Segment      string
	Price        decimal.Decimal // precio unitario en moneda base
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
