package report_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de venta
// ──────────────────────────────────────────────────────────────────────────────

func buildTestSale() *entity.Sale {
	price := decimal.NewFromFloat(2.50)
	return &entity.Sale{
		ID:         "sale-001",
		OperatorID: "op-001",
		Client:     entity.ClientRef{ID: "c1", Name: "Bodega La Esquina", TaxID: "J-12345678-9"},
		Vehicle:    entity.VehicleRef{ID: "v1", Make: "Ford", Model: "Cargo", Plate: "ABC-123"},
		Lines: []entity.SaleLine{
			{
				ProductID:    "p1",
				Name:         "Harina PAN",
				Presentation: "1kg",
				UnitPrice:    price,
				Quantity:     4,
				Subtotal:     price.Mul(decimal.NewFromInt(4)),
			},
			{
				ProductID:    "p2",
				Name:         "Café Madrid",
				Presentation: "250g",
				UnitPrice:    decimal.NewFromFloat(3.75),
				Quantity:     2,
				Subtotal:     decimal.NewFromFloat(7.50),
			},
		},
		Total: decimal.NewFromFloat(17.50),
	}
}

func TestSerializeSale_Layout(t *testing.T) {
	out := report.SerializeSale(buildTestSale())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "identificación + cliente + encabezado + 2 líneas + total")

	assert.Equal(t, "Vehículo,Ford Cargo,ABC-123", lines[0])
	assert.Equal(t, "Cliente,Bodega La Esquina,J-12345678-9", lines[1])
	assert.Equal(t, "Producto,Presentación,Cantidad,Precio,Subtotal", lines[2])
	assert.Equal(t, "Harina PAN,1kg,4,2.50,10.00", lines[3])
	assert.Equal(t, "Café Madrid,250g,2,3.75,7.50", lines[4])
	assert.Equal(t, "Total,,,,17.50", lines[5])
}

func TestSerializeSale_TerminaEnLF(t *testing.T) {
	out := report.SerializeSale(buildTestSale())
	assert.True(t, strings.HasSuffix(out, "\n"), "el reporte termina en LF")
	assert.NotContains(t, out, "\r\n", "sin finales de línea CRLF")
}

// Los campos con comas o comillas se envuelven en comillas dobles,
// duplicando las internas; los demás se emiten tal cual.
func TestSerializeSale_EscapaCamposConComasYComillas(t *testing.T) {
	sale := buildTestSale()
	sale.Client.Name = `Abastos "El Sol", C.A.`
	sale.Lines = sale.Lines[:1]
	sale.Lines[0].Name = "Arroz, grano entero"

	out := report.SerializeSale(sale)

	assert.Contains(t, out, `Cliente,"Abastos ""El Sol"", C.A.",J-12345678-9`)
	assert.Contains(t, out, `"Arroz, grano entero",1kg,4,2.50,10.00`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de cierre
// ──────────────────────────────────────────────────────────────────────────────

func buildTestSettlement() *entity.Settlement {
	return &entity.Settlement{
		Day:        "2026-08-31",
		OperatorID: "op-001",
		Clients: map[string]entity.ClientTotals{
			"c2": {
				Client:     entity.ClientRef{ID: "c2", Name: "Panadería Central"},
				Quantities: map[string]int64{"p2": 1},
			},
			"c1": {
				Client:     entity.ClientRef{ID: "c1", Name: "Bodega La Esquina"},
				Quantities: map[string]int64{"p1": 5, "p2": 3},
			},
		},
		Items: map[string]entity.ItemMeta{
			"p1": {Name: "Harina PAN", Presentation: "1kg"},
			"p2": {Name: "Café Madrid", Presentation: "250g"},
		},
	}
}

func TestSerializeSettlement_Layout(t *testing.T) {
	s := buildTestSettlement()
	out := report.SerializeSettlement(s, report.ItemOrder(s.Items))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, "contexto + encabezado + 2 clientes + total")

	assert.Equal(t, "Cierre,2026-08-31,op-001", lines[0])
	// Columnas por nombre de producto: Café antes que Harina.
	assert.Equal(t, "Cliente,Café Madrid (250g),Harina PAN (1kg)", lines[1])
	// Filas por nombre de cliente: Bodega antes que Panadería.
	assert.Equal(t, "Bodega La Esquina,3,5", lines[2])
	assert.Equal(t, "Panadería Central,1,0", lines[3])
	assert.Equal(t, "Total,4,5", lines[4])
}

// El orden de columnas ignora mayúsculas y desempata por ID de producto.
func TestItemOrder_InsensibleAMayusculasYDeterminista(t *testing.T) {
	items := map[string]entity.ItemMeta{
		"p3": {Name: "azúcar"},
		"p1": {Name: "Azúcar"},
		"p2": {Name: "Café"},
	}
	order := report.ItemOrder(items)
	require.Len(t, order, 3)

	// Los dos "azúcar" empatan por nombre y caen al orden por ID.
	assert.Equal(t, []string{"p1", "p3", "p2"}, order)
}

// La fila de total suma cada columna sobre todos los clientes.
func TestSerializeSettlement_TotalSumaPorColumna(t *testing.T) {
	s := buildTestSettlement()
	s.Clients["c3"] = entity.ClientTotals{
		Client:     entity.ClientRef{ID: "c3", Name: "Abasto Nuevo"},
		Quantities: map[string]int64{"p1": 7},
	}
	out := report.SerializeSettlement(s, report.ItemOrder(s.Items))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "Total,4,12", lines[len(lines)-1])
}

// Un cierre sin productos produce solo contexto, encabezado y total.
func TestSerializeSettlement_SinClientes(t *testing.T) {
	s := &entity.Settlement{
		Day:        "2026-08-31",
		OperatorID: "op-001",
		Clients:    map[string]entity.ClientTotals{},
		Items:      map[string]entity.ItemMeta{},
	}
	out := report.SerializeSettlement(s, report.ItemOrder(s.Items))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Cliente", lines[1])
	assert.Equal(t, "Total", lines[2])
}
