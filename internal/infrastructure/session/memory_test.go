package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	id, err := store.Create(ctx, Session{Username: "Ana", Role: "empleado"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sess, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.Username != "Ana" {
		t.Fatalf("session = %+v", sess)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	id, _ := store.Create(ctx, Session{Username: "Ana", Role: "empleado"})

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after expiry = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Flashes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	id, _ := store.Create(ctx, Session{Username: "Luis", Role: "gestor"})
	if err := store.PushFlash(ctx, id, Flash{Level: "warning", Message: "ojo"}); err != nil {
		t.Fatalf("PushFlash: %v", err)
	}

	flashes, err := store.PopFlashes(ctx, id)
	if err != nil {
		t.Fatalf("PopFlashes: %v", err)
	}
	if len(flashes) != 1 || flashes[0].Message != "ojo" {
		t.Fatalf("flashes = %+v", flashes)
	}
	if again, _ := store.PopFlashes(ctx, id); len(again) != 0 {
		t.Fatalf("expected cleared flashes, got %+v", again)
	}
}
