package report

import (
	"strconv"
	"strings"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
)

// SerializeSale genera el reporte de una venta: línea de identificación del
// vehículo, línea del cliente, encabezado de columnas, una línea por producto
// vendido y línea final de total. Los montos van en moneda base con dos
// decimales.
func SerializeSale(sale *entity.Sale) string {
	var b strings.Builder

	vehicle := strings.TrimSpace(sale.Vehicle.Make + " " + sale.Vehicle.Model)
	b.WriteString(row("Vehículo", vehicle, sale.Vehicle.Plate))
	b.WriteByte('\n')
	b.WriteString(row("Cliente", sale.Client.Name, sale.Client.TaxID))
	b.WriteByte('\n')
	b.WriteString(row("Producto", "Presentación", "Cantidad", "Precio", "Subtotal"))
	b.WriteByte('\n')
	for _, l := range sale.Lines {
		b.WriteString(row(
			l.Name,
			l.Presentation,
			strconv.FormatInt(l.Quantity, 10),
			l.UnitPrice.StringFixed(2),
			l.Subtotal.StringFixed(2),
		))
		b.WriteByte('\n')
	}
	b.WriteString(row("Total", "", "", "", sale.Total.StringFixed(2)))
	b.WriteByte('\n')
	return b.String()
}
