package gormdb

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"control-horas/internal/domain/audit"
	"control-horas/pkg/id"
)

func openTestDB(t *testing.T) *AuditRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := NewAuditRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func TestAuditRepository_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	entries := []*audit.Entry{
		{EventID: id.New(), Actor: "gestor1", Action: audit.ActionDecide, Detail: "fila 2 aprobar"},
		{EventID: id.New(), Actor: "gestor1", Action: audit.ActionDecide, Detail: "fila 3 rechazar"},
		{EventID: id.New(), Actor: "gestor2", Action: audit.ActionCreateAccount, Detail: "alta de Eva"},
	}
	for _, e := range entries {
		if err := repo.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Most recent first.
	if got[0].Detail != "alta de Eva" || got[1].Detail != "fila 3 rechazar" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestAuditRepository_DuplicateEventID(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	e := &audit.Entry{EventID: id.New(), Actor: "gestor1", Action: audit.ActionDecide}
	if err := repo.Record(ctx, e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	dup := &audit.Entry{EventID: e.EventID, Actor: "gestor1", Action: audit.ActionDecide}
	if err := repo.Record(ctx, dup); err == nil {
		t.Fatal("expected unique-index violation, got nil")
	}
}
