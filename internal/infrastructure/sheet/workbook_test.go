package sheet

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestWorkbook(t *testing.T) *WorkbookStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prueba.xlsx")
	err := SeedWorkbook(path, map[string][]string{
		SheetBalances: {"Nombre", "Password", "Rol", "Horas acumuladas"},
		SheetRequests: {"Nombre", "Fecha solicitada", "Cantidad de horas", "Motivo", "Fecha de registro", "Estado"},
	})
	if err != nil {
		t.Fatalf("SeedWorkbook: %v", err)
	}
	s, err := NewWorkbookStore(path)
	if err != nil {
		t.Fatalf("NewWorkbookStore: %v", err)
	}
	return s
}

func TestWorkbookStore_AppendAndRows(t *testing.T) {
	ctx := context.Background()
	s := newTestWorkbook(t)

	if err := s.AppendRow(ctx, SheetBalances, []string{"Ana", "secreta", "empleado", "10"}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := s.AppendRow(ctx, SheetBalances, []string{"Luis", "clave", "gestor", "5"}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}

	rows, err := s.Rows(ctx, SheetBalances)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (header + 2)", len(rows))
	}
	if rows[1][0] != "Ana" || rows[2][0] != "Luis" {
		t.Fatalf("unexpected row order: %v", rows)
	}
}

func TestWorkbookStore_UpdateCell(t *testing.T) {
	ctx := context.Background()
	s := newTestWorkbook(t)

	if err := s.AppendRow(ctx, SheetBalances, []string{"Ana", "secreta", "empleado", "10"}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	// Horas acumuladas is column 4, Ana sits in row 2.
	if err := s.UpdateCell(ctx, SheetBalances, 2, 4, "6"); err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}

	rows, err := s.Rows(ctx, SheetBalances)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if rows[1][3] != "6" {
		t.Fatalf("cell = %q, want %q", rows[1][3], "6")
	}
}

func TestWorkbookStore_UnknownSheet(t *testing.T) {
	s := newTestWorkbook(t)
	if _, err := s.Rows(context.Background(), "NoExiste"); err == nil {
		t.Fatal("expected error for unknown sheet, got nil")
	}
}

func TestNewWorkbookStore_MissingFile(t *testing.T) {
	if _, err := NewWorkbookStore(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDisconnected(t *testing.T) {
	ctx := context.Background()
	var s Store = Disconnected{}

	if _, err := s.Rows(ctx, SheetBalances); err != ErrDisconnected {
		t.Fatalf("Rows err = %v, want ErrDisconnected", err)
	}
	if err := s.AppendRow(ctx, SheetBalances, nil); err != ErrDisconnected {
		t.Fatalf("AppendRow err = %v, want ErrDisconnected", err)
	}
	if err := s.UpdateCell(ctx, SheetBalances, 2, 1, "x"); err != ErrDisconnected {
		t.Fatalf("UpdateCell err = %v, want ErrDisconnected", err)
	}
}
