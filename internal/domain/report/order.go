package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
)

// ItemOrder devuelve los IDs de producto de la matriz en el orden estable de
// las columnas del reporte: por nombre de producto con colación española
// insensible a mayúsculas, desempatando por ID para que el orden sea
// determinista ante entradas idénticas.
func ItemOrder(items map[string]entity.ItemMeta) []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.Slice(ids, func(i, j int) bool {
		cmp := c.CompareString(items[ids[i]].Name, items[ids[j]].Name)
		if cmp != 0 {
			return cmp < 0
		}
		return ids[i] < ids[j]
	})
	return ids
}

// clientOrder ordena los IDs de cliente por nombre (misma colación que las
// columnas), desempatando por ID.
func clientOrder(clients map[string]entity.ClientTotals) []string {
	ids := make([]string, 0, len(clients))
	for id := range clients {
		ids = append(ids, id)
	}
	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.Slice(ids, func(i, j int) bool {
		cmp := c.CompareString(clients[ids[i]].Client.Name, clients[ids[j]].Client.Name)
		if cmp != 0 {
			return cmp < 0
		}
		return ids[i] < ids[j]
	})
	return ids
}
