package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

func TestDedupIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("no source url is never a duplicate", func(t *testing.T) {
		store := &fakeLeadStore{existing: map[string]bool{}, existsErr: map[string]error{}}
		idx := NewDedupIndex(store)

		rec := domain.RawBusinessRecord{Name: "Walk In Cafe"}
		for i := 0; i < 2; i++ {
			isDup, err := idx.IsDuplicate(ctx, rec)
			if err != nil {
				t.Fatalf("IsDuplicate() error = %v", err)
			}
			if isDup {
				t.Errorf("IsDuplicate() attempt %d = true, want false", i+1)
			}
		}
		if store.existsCalls != 0 {
			t.Errorf("storage calls = %d, want 0", store.existsCalls)
		}
	})

	t.Run("repeat within a run", func(t *testing.T) {
		store := &fakeLeadStore{existing: map[string]bool{}, existsErr: map[string]error{}}
		idx := NewDedupIndex(store)
		rec := plainRecord("Corner Cafe", "https://maps.example.com/corner")

		if isDup, err := idx.IsDuplicate(ctx, rec); err != nil || isDup {
			t.Fatalf("first IsDuplicate() = %v, %v, want false, nil", isDup, err)
		}
		if isDup, err := idx.IsDuplicate(ctx, rec); err != nil || !isDup {
			t.Fatalf("second IsDuplicate() = %v, %v, want true, nil", isDup, err)
		}
		if store.existsCalls != 1 {
			t.Errorf("storage calls = %d, want 1", store.existsCalls)
		}
	})

	t.Run("already stored", func(t *testing.T) {
		store := &fakeLeadStore{
			existing:  map[string]bool{"https://maps.example.com/known": true},
			existsErr: map[string]error{},
		}
		idx := NewDedupIndex(store)
		rec := plainRecord("Known Cafe", "https://maps.example.com/known")

		for i := 0; i < 2; i++ {
			isDup, err := idx.IsDuplicate(ctx, rec)
			if err != nil {
				t.Fatalf("IsDuplicate() error = %v", err)
			}
			if !isDup {
				t.Errorf("IsDuplicate() attempt %d = false, want true", i+1)
			}
		}
		if store.existsCalls != 1 {
			t.Errorf("storage calls = %d, want 1: storage hits are cached for the run", store.existsCalls)
		}
	})

	t.Run("storage error does not poison the seen set", func(t *testing.T) {
		store := &fakeLeadStore{
			existing:  map[string]bool{},
			existsErr: map[string]error{"https://maps.example.com/flaky": errors.New("database locked")},
		}
		idx := NewDedupIndex(store)
		rec := plainRecord("Flaky Cafe", "https://maps.example.com/flaky")

		if _, err := idx.IsDuplicate(ctx, rec); err == nil {
			t.Fatal("IsDuplicate() error = nil, want storage error")
		}

		// After the storage recovers the same record must be re-checked,
		// not answered from a stale seen entry.
		store.mu.Lock()
		delete(store.existsErr, "https://maps.example.com/flaky")
		store.mu.Unlock()

		isDup, err := idx.IsDuplicate(ctx, rec)
		if err != nil {
			t.Fatalf("IsDuplicate() after recovery error = %v", err)
		}
		if isDup {
			t.Error("IsDuplicate() after recovery = true, want false")
		}
		if store.existsCalls != 2 {
			t.Errorf("storage calls = %d, want 2", store.existsCalls)
		}
	})
}
