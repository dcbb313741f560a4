package entity

import "time"

// ItemMeta snapshot de presentación de un producto al momento del cierre,
// para que el reporte siga siendo legible aunque el catálogo cambie después.
type ItemMeta struct {
	Name         string `json:"name"`
	Presentation string `json:"presentation"`
}

// ClientTotals acumulado de cantidades por producto para un cliente dentro
// de un cierre.
type ClientTotals struct {
	Client     ClientRef        `json:"client"`
	Quantities map[string]int64 `json:"quantities"` // product id -> cantidad sumada
}

// Settlement representa el cierre diario de un operador: la matriz
// cliente×producto consolidada a partir de las ventas del día. Se crea una
// vez por (día, operador); cierres repetidos sobre la misma clave se
// fusionan sumando cantidades (nunca last-write-wins, que subcontaría un
// segundo cierre). Nunca se elimina.
type Settlement struct {
	Day        string // YYYY-MM-DD local
	OperatorID string
	ClosedAt   time.Time
	Clients    map[string]ClientTotals // client id -> acumulado
	Items      map[string]ItemMeta     // product id -> metadatos snapshot
}

// Merge suma las cantidades de other sobre s, cliente por cliente y producto
// por producto. Los metadatos de producto conservan el primer valor visto.
func (s *Settlement) Merge(other *Settlement) {
	for clientID, incoming := range other.Clients {
		existing, ok := s.Clients[clientID]
		if !ok {
			existing = ClientTotals{Client: incoming.Client, Quantities: make(map[string]int64)}
		}
		for productID, qty := range incoming.Quantities {
			existing.Quantities[productID] += qty
		}
		s.Clients[clientID] = existing
	}
	for productID, meta := range other.Items {
		if _, ok := s.Items[productID]; !ok {
			s.Items[productID] = meta
		}
	}
	if other.ClosedAt.After(s.ClosedAt) {
		s.ClosedAt = other.ClosedAt
	}
}
