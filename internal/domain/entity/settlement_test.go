package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
)

func settlementWith(closedAt time.Time, clients map[string]entity.ClientTotals, items map[string]entity.ItemMeta) *entity.Settlement {
	return &entity.Settlement{
		Day:        "2026-08-31",
		OperatorID: "op-001",
		ClosedAt:   closedAt,
		Clients:    clients,
		Items:      items,
	}
}

// Merge suma cantidades por (cliente, producto); nunca sobrescribe.
func TestSettlementMerge_SumaCantidades(t *testing.T) {
	base := settlementWith(time.Now(),
		map[string]entity.ClientTotals{
			"cA": {Client: entity.ClientRef{ID: "cA", Name: "Bodega"}, Quantities: map[string]int64{"p1": 3}},
		},
		map[string]entity.ItemMeta{"p1": {Name: "Harina PAN", Presentation: "1kg"}},
	)
	incoming := settlementWith(time.Now(),
		map[string]entity.ClientTotals{
			"cA": {Client: entity.ClientRef{ID: "cA", Name: "Bodega"}, Quantities: map[string]int64{"p1": 2, "p2": 1}},
			"cB": {Client: entity.ClientRef{ID: "cB", Name: "Panadería"}, Quantities: map[string]int64{"p1": 4}},
		},
		map[string]entity.ItemMeta{
			"p1": {Name: "Harina PAN Cambiada"},
			"p2": {Name: "Café Madrid", Presentation: "250g"},
		},
	)

	base.Merge(incoming)

	assert.Equal(t, int64(5), base.Clients["cA"].Quantities["p1"])
	assert.Equal(t, int64(1), base.Clients["cA"].Quantities["p2"])
	assert.Equal(t, int64(4), base.Clients["cB"].Quantities["p1"])

	// Los metadatos conservan el primer valor visto.
	assert.Equal(t, "Harina PAN", base.Items["p1"].Name)
	assert.Equal(t, "Café Madrid", base.Items["p2"].Name)
}

func TestSettlementMerge_ClosedAtConservaElMasReciente(t *testing.T) {
	early := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	late := time.Date(2026, 8, 31, 18, 0, 0, 0, time.Local)

	base := settlementWith(late, map[string]entity.ClientTotals{}, map[string]entity.ItemMeta{})
	base.Merge(settlementWith(early, map[string]entity.ClientTotals{}, map[string]entity.ItemMeta{}))
	assert.Equal(t, late, base.ClosedAt)

	base.Merge(settlementWith(late.Add(time.Hour), map[string]entity.ClientTotals{}, map[string]entity.ItemMeta{}))
	assert.Equal(t, late.Add(time.Hour), base.ClosedAt)
}
