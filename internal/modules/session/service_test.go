// README: Session service tests: lifecycle, per-key serialization, store contract.
package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"sofia/internal/modules/intent"
)

func TestService_TouchCreatesSession(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.Touch(ctx, "", intent.WeatherCheck, Extract("weather in Tokyo"), "weather in Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if sess.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", sess.TurnCount)
	}
	if sess.CurrentDestination != "Tokyo" {
		t.Errorf("destination = %q, want Tokyo", sess.CurrentDestination)
	}
}

func TestService_TouchReusesSession(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	first, err := svc.Touch(ctx, "abc", intent.Unclassified, Entities{}, "hi")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Touch(ctx, "abc", intent.Unclassified, Entities{}, "hello again")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %s vs %s", first.ID, second.ID)
	}
	if second.TurnCount != 2 {
		t.Errorf("TurnCount = %d, want 2", second.TurnCount)
	}
}

func TestService_GetAndDestroy(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	if _, err := svc.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	sess, err := svc.Touch(ctx, "abc", intent.Unclassified, Entities{}, "hi")
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", got.TurnCount)
	}

	if err := svc.Destroy(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, sess.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after destroy, got %v", err)
	}
}

func TestService_SerializesPerKey(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	const turns = 50
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("message %d", i)
			if _, err := svc.Touch(ctx, "hot", intent.Unclassified, Entities{}, msg); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	sess, err := svc.Get(ctx, "hot")
	if err != nil {
		t.Fatal(err)
	}
	if sess.TurnCount != turns {
		t.Errorf("TurnCount = %d, want %d (updates lost under concurrency)", sess.TurnCount, turns)
	}
}

func TestMemoryStore_Contract(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	sess := New("x")
	if err := store.Put(ctx, sess); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "x")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "x" || got.State != StateGreeting {
		t.Errorf("unexpected session: %+v", got)
	}
	if err := store.Delete(ctx, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "x"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
