package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryStore_GetPut(t *testing.T) {
	store := NewMemoryStore[string]()
	ctx := context.Background()

	if err := store.Put(ctx, "id", "value"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, "id")
	if err != nil || !ok || got != "value" {
		t.Errorf("Get = %q, %v, %v", got, ok, err)
	}
	if _, ok, _ := store.Get(ctx, "missing"); ok {
		t.Error("expected missing id to be absent")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()
	_ = store.Put(ctx, "id", 1)
	if err := store.Delete(ctx, "id"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "id"); ok {
		t.Error("value survived Delete")
	}
}

func TestMemoryStore_SweepDropsIdle(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_ = store.Put(ctx, "old", 1)
	_ = store.Put(ctx, "busy", 2)
	now = now.Add(2 * time.Hour)
	_, _, _ = store.Get(ctx, "busy")
	now = now.Add(30 * time.Minute)

	n, err := store.Sweep(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || store.Len() != 1 {
		t.Fatalf("swept %d, %d left", n, store.Len())
	}
	if _, ok, _ := store.Get(ctx, "busy"); !ok {
		t.Error("active session was swept")
	}
}

func TestMemoryStore_NewID(t *testing.T) {
	store := NewMemoryStore[string]()
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.NewID()
		if ids[id] {
			t.Errorf("duplicate id %s", id)
		}
		ids[id] = true
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("id %q is not a uuid: %v", id, err)
		}
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_ = store.Put(ctx, "key", v)
			_, _, _ = store.Get(ctx, "key")
			_, _ = store.Sweep(ctx, time.Hour)
		}(i)
	}
	wg.Wait()
	if _, ok, _ := store.Get(ctx, "key"); !ok {
		t.Error("value missing after concurrent writes")
	}
}

func TestJanitor_StopsOnCancel(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Janitor[int](ctx, store, time.Millisecond, time.Hour)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
