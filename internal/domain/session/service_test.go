package session

import (
	"context"
	"testing"

	"petcare-registry/internal/adapters/storage/memory"
)

func TestService_SetGetClear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewKVStore(), nil)

	if _, ok, err := svc.Get(ctx, "dev-1"); err != nil || ok {
		t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
	}

	sess, err := svc.Set(ctx, "dev-1", "  Ana ")
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if sess.Name != "Ana" || !sess.LoggedIn {
		t.Fatalf("unexpected session %+v", sess)
	}

	got, ok, err := svc.Get(ctx, "dev-1")
	if err != nil || !ok {
		t.Fatalf("expected session, got ok=%v err=%v", ok, err)
	}
	if got != sess {
		t.Fatalf("expected %+v, got %+v", sess, got)
	}

	// otro dispositivo no comparte sesión
	if _, ok, _ := svc.Get(ctx, "dev-2"); ok {
		t.Fatalf("session leaked across devices")
	}

	if err := svc.Clear(ctx, "dev-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, ok, _ := svc.Get(ctx, "dev-1"); ok {
		t.Fatalf("expected session cleared")
	}
}

func TestService_Set_RequiresName(t *testing.T) {
	svc := NewService(memory.NewKVStore(), nil)

	if _, err := svc.Set(context.Background(), "dev-1", "   "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Get_CorruptValueMeansNoSession(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	svc := NewService(store, nil)

	_ = store.Set(ctx, "dev-1", StorageKey, []byte(`{"name":`))
	if _, ok, err := svc.Get(ctx, "dev-1"); err != nil || ok {
		t.Fatalf("expected no session for corrupt value, got ok=%v err=%v", ok, err)
	}

	_ = store.Set(ctx, "dev-1", StorageKey, []byte(`{"name":"Ana","loggedIn":false}`))
	if _, ok, _ := svc.Get(ctx, "dev-1"); ok {
		t.Fatalf("loggedIn=false must not count as a session")
	}
}
