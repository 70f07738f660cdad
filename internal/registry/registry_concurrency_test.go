package registry_test

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

// TestConcurrentDefineSamePair verifies that racing defines of one unordered
// pair produce exactly one winner and that every lookup sees that winner.
func TestConcurrentDefineSamePair(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	workers := runtime.GOMAXPROCS(0) * 4

	var (
		wg         sync.WaitGroup
		successes  atomic.Int32
		duplicates atomic.Int32
		winner     atomic.Pointer[relationship.TypeToType]
	)

	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()

			a, b := "post", "car"
			if w%2 == 1 {
				a, b = b, a
			}

			rel, err := reg.DefineTypeToType(a, b, "basic")
			switch {
			case err == nil:
				successes.Add(1)
				winner.Store(rel)
			case errors.Is(err, relationship.ErrDuplicate):
				duplicates.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := successes.Load(); got != 1 {
		t.Fatalf("successful defines = %d, want 1", got)
	}
	if got := duplicates.Load(); got != int32(workers-1) {
		t.Errorf("duplicate errors = %d, want %d", got, workers-1)
	}

	got, ok := reg.GetTypeToType("car", "post", "basic")
	if !ok || got != winner.Load() {
		t.Error("lookup did not return the winning definition")
	}
}

// TestConcurrentDefineAndLookup exercises reads and writes together so the
// race detector can observe the locking.
func TestConcurrentDefineAndLookup(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	types := []string{"post", "car", "tire", "page", "media"}
	workers := max(runtime.GOMAXPROCS(0)*2, len(types))

	var wg sync.WaitGroup

	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()
			for i := range 500 {
				a := types[(w+i)%len(types)]
				b := types[i%len(types)]
				_, _ = reg.DefineTypeToType(a, b, "basic")
				_, _ = reg.DefineTypeToActor(a, "owner")
				_ = reg.TypeToTypeExists(b, a, "basic")
				_ = reg.TypeToTypes()
				_ = reg.TypeToActors()
			}
		}()
	}
	wg.Wait()

	// 5 self pairs + C(5,2) distinct pairs.
	if got := len(reg.TypeToTypes()); got != 15 {
		t.Errorf("len(TypeToTypes()) = %d, want 15", got)
	}
	if got := len(reg.TypeToActors()); got != len(types) {
		t.Errorf("len(TypeToActors()) = %d, want %d", got, len(types))
	}
}
