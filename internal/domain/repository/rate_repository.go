package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// RateRepository define el puerto de la configuración de tasas de cambio
// (multiplicadores de Bs y COP frente a la moneda base). Cada venta lee la
// tasa vigente una sola vez y la guarda como snapshot.
type RateRepository interface {
	Get() (entity.RateSnapshot, error)
	Put(rates entity.RateSnapshot) error
}
