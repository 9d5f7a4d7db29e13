package sheet

import (
	"context"
	"errors"
	"fmt"
)

// Worksheet names inside the spreadsheet. The column names inside each are
// part of the store contract too; they live with the repositories.
const (
	SheetBalances = "Saldos"
	SheetRequests = "Solicitudes"
)

var ErrDisconnected = errors.New("spreadsheet store not connected")

// Store is the raw tabular gateway. Rows returns the full sheet including
// the header row; AppendRow adds one row at the bottom; UpdateCell writes a
// single cell by 1-based row and column.
type Store interface {
	Rows(ctx context.Context, sheet string) ([][]string, error)
	AppendRow(ctx context.Context, sheet string, values []string) error
	UpdateCell(ctx context.Context, sheet string, row, col int, value string) error
}

// MissingColumnError reports a header that lacks a required column. Reads
// fail as a whole rather than guessing at positions.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %q: missing column %q", e.Sheet, e.Column)
}

// ColumnIndex returns the 0-based index of name in header, or -1.
func ColumnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// CellName converts 1-based row/column to A1 notation ("B3").
func CellName(row, col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return fmt.Sprintf("%s%d", letters, row)
}
