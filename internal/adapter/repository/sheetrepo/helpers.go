package sheetrepo

import (
	"strconv"

	"control-horas/internal/infrastructure/sheet"
)

// Column names are the actual store contract; lookups are by name, never by
// fixed position.
const (
	colNombre   = "Nombre"
	colPassword = "Password"
	colRol      = "Rol"
	colHoras    = "Horas acumuladas"

	colFecha    = "Fecha solicitada"
	colCantidad = "Cantidad de horas"
	colMotivo   = "Motivo"
	colRegistro = "Fecha de registro"
	colEstado   = "Estado"
)

// SeedHeaders is the header row of each tab in a freshly created workbook.
func SeedHeaders() map[string][]string {
	return map[string][]string{
		sheet.SheetBalances: {colNombre, colPassword, colRol, colHoras},
		sheet.SheetRequests: {colNombre, colFecha, colCantidad, colMotivo, colRegistro, colEstado},
	}
}

// at reads a cell bounds-safely; short rows read as blank cells.
func at(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

func formatHours(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
