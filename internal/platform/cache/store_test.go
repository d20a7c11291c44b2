package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntriesAfterTTL(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "matches:43:3", []int{1})
	if _, ok := store.Get(context.Background(), "matches:43:3"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "matches:43:3"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

func TestStore_ClearAndDeletePrefix(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "xg:1", 1)
	store.Set(ctx, "xg:2", 2)
	store.Set(ctx, "shots:1", 3)

	store.DeletePrefix(ctx, "xg:")
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry after prefix delete, got %d", store.Len())
	}

	store.Clear(ctx)
	if store.Len() != 0 {
		t.Fatalf("expected empty store after clear, got %d", store.Len())
	}
}

func TestLoad_Typed(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	got, err := Load(ctx, store, "k", func(context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected load result %v, %v", got, err)
	}

	if _, err := Load(ctx, store, "k", func(context.Context) (int, error) { return 1, nil }); err == nil {
		t.Fatalf("expected type mismatch error")
	}

	loadErr := errors.New("store down")
	if _, err := Load(ctx, nil, "k", func(context.Context) (int, error) { return 0, loadErr }); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
