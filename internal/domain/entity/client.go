package entity

import "time"

// Client representa un cliente de la ruta de venta.
type Client struct {
	ID        string
	Name      string
	TaxID     string // RIF o cédula
	Zone      string
	Sector    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientRef referencia embebida de cliente dentro de una venta o cierre
// (se copia al momento de la operación para que el registro sea legible
// aunque el directorio cambie después).
type ClientRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// Ref devuelve la referencia embebible del cliente.
func (c *Client) Ref() ClientRef {
	return ClientRef{ID: c.ID, Name: c.Name, TaxID: c.TaxID}
}
