package sheetfake

import (
	"context"
	"sync"
	"testing"

	"control-horas/internal/infrastructure/sheet"
)

func TestStore_ConcurrentAccess(t *testing.T) {
	fake := New()
	fake.Seed(sheet.SheetRequests, [][]string{
		{"Nombre", "Estado"},
		{"Ana", "Pendiente"},
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := fake.Rows(ctx, sheet.SheetRequests); err != nil {
					t.Errorf("Rows: %v", err)
					return
				}
				if err := fake.AppendRow(ctx, sheet.SheetRequests, []string{"Luis", "Pendiente"}); err != nil {
					t.Errorf("AppendRow: %v", err)
					return
				}
				if err := fake.UpdateCell(ctx, sheet.SheetRequests, 2, 2, "Aprobado"); err != nil {
					t.Errorf("UpdateCell: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	rows := fake.Tab(sheet.SheetRequests)
	if len(rows) != 2+8*50 {
		t.Fatalf("rows = %d, want %d", len(rows), 2+8*50)
	}
	if rows[1][1] != "Aprobado" {
		t.Fatalf("estado = %q, want Aprobado", rows[1][1])
	}
}
