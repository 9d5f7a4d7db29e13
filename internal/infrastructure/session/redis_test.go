package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return NewRedisStore(c, time.Hour)
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	id, err := store.Create(ctx, Session{Username: "Ana", Role: "empleado"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("empty session id")
	}

	sess, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.Username != "Ana" || sess.Role != "empleado" {
		t.Fatalf("session = %+v", sess)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestRedisStore_Flashes(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)

	id, err := store.Create(ctx, Session{Username: "Luis", Role: "gestor"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.PushFlash(ctx, id, Flash{Level: "success", Message: "hecho"}); err != nil {
		t.Fatalf("PushFlash: %v", err)
	}
	if err := store.PushFlash(ctx, id, Flash{Level: "error", Message: "fallo"}); err != nil {
		t.Fatalf("PushFlash: %v", err)
	}

	flashes, err := store.PopFlashes(ctx, id)
	if err != nil {
		t.Fatalf("PopFlashes: %v", err)
	}
	if len(flashes) != 2 || flashes[0].Message != "hecho" || flashes[1].Level != "error" {
		t.Fatalf("flashes = %+v", flashes)
	}

	// Popped once, gone after.
	again, err := store.PopFlashes(ctx, id)
	if err != nil {
		t.Fatalf("PopFlashes second: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no flashes, got %+v", again)
	}
}

func TestRedisStore_UnknownSession(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
	if err := store.PushFlash(ctx, "missing", Flash{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("PushFlash = %v, want ErrNotFound", err)
	}
}
