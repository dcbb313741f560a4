package entity

import "time"

// Vehicle representa un vehículo de reparto; cada vehículo tiene su propia
// partición de stock (carga del camión).
type Vehicle struct {
	ID        string
	Make      string
	Model     string
	Plate     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleRef referencia embebida de vehículo dentro de una venta.
type VehicleRef struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

// Ref devuelve la referencia embebible del vehículo.
func (v *Vehicle) Ref() VehicleRef {
	return VehicleRef{ID: v.ID, Make: v.Make, Model: v.Model, Plate: v.Plate}
}
