package dto

import "github.com/shopspring/decimal"

// CreateClientRequest alta o edición de cliente del directorio.
type CreateClientRequest struct {
	Name   string `json:"name"`
	TaxID  string `json:"tax_id"`
	Zone   string `json:"zone"`
	Sector string `json:"sector"`
}

// ClientResponse cliente del directorio.
type ClientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TaxID  string `json:"tax_id"`
	Zone   string `json:"zone"`
	Sector string `json:"sector"`
}

// CreateVehicleRequest alta de vehículo.
type CreateVehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

// VehicleResponse vehículo del directorio.
type VehicleResponse struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

// CreateProductRequest alta o edición de producto del catálogo.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	Category     string          `json:"category"`
	Segment      string          `json:"segment"`
	Price        decimal.Decimal `json:"price"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	Category     string          `json:"category"`
	Segment      string          `json:"segment"`
	Price        decimal.Decimal `json:"price"`
}
