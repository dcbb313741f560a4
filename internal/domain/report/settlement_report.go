package report

import (
	"strconv"
	"strings"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
)

// SerializeSettlement genera el reporte de un cierre diario: línea de
// contexto, encabezado con la columna de cliente más una columna por producto
// en el orden dado, una fila por cliente y fila final con la suma por
// columna. itemOrder normalmente viene de ItemOrder(s.Items).
func SerializeSettlement(s *entity.Settlement, itemOrder []string) string {
	var b strings.Builder

	b.WriteString(row("Cierre", s.Day, s.OperatorID))
	b.WriteByte('\n')

	header := make([]string, 0, len(itemOrder)+1)
	header = append(header, "Cliente")
	for _, productID := range itemOrder {
		header = append(header, columnTitle(s.Items[productID]))
	}
	b.WriteString(row(header...))
	b.WriteByte('\n')

	sums := make(map[string]int64, len(itemOrder))
	for _, clientID := range clientOrder(s.Clients) {
		totals := s.Clients[clientID]
		fields := make([]string, 0, len(itemOrder)+1)
		fields = append(fields, totals.Client.Name)
		for _, productID := range itemOrder {
			qty := totals.Quantities[productID]
			sums[productID] += qty
			fields = append(fields, strconv.FormatInt(qty, 10))
		}
		b.WriteString(row(fields...))
		b.WriteByte('\n')
	}

	totalRow := make([]string, 0, len(itemOrder)+1)
	totalRow = append(totalRow, "Total")
	for _, productID := range itemOrder {
		totalRow = append(totalRow, strconv.FormatInt(sums[productID], 10))
	}
	b.WriteString(row(totalRow...))
	b.WriteByte('\n')
	return b.String()
}

// columnTitle compone el título de la columna con nombre y presentación.
func columnTitle(meta entity.ItemMeta) string {
	if meta.Presentation == "" {
		return meta.Name
	}
	return meta.Name + " (" + meta.Presentation + ")"
}
