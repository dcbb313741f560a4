// Package report serializa ventas y cierres diarios como texto delimitado
// por comas (UTF-8, LF, sin BOM), listo para descarga.
package report

import "strings"

// escapeField aplica la regla de quoting mínimo: el campo se envuelve en
// comillas dobles (duplicando las internas) solo si contiene coma, comilla
// doble o salto de línea; en cualquier otro caso se emite tal cual. La misma
// regla aplica a ambos tipos de reporte y garantiza que separar una fila por
// comas no escapadas recupera los valores originales.
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}

// row serializa una fila de campos ya en texto crudo.
func row(fields ...string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, ",")
}
