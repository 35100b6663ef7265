package storage

import (
	"testing"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/lane"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

func testLane(id domain.LaneID) *lane.Lane {
	return lane.New(id, "c", domain.Style{}, domain.Rect{Width: 400, Height: 60}, 10, domain.WrapLoop)
}

func TestLaneStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewLaneStore(log)

	// Put.
	if err := store.Put(testLane(1)); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Put duplicate.
	if err := store.Put(testLane(1)); err != domain.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Get.
	l, err := store.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.ID() != 1 {
		t.Fatalf("expected id 1, got %s", l.ID())
	}

	// Get nonexistent.
	if _, err := store.Get(99); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Delete.
	if err := store.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(1); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Delete nonexistent.
	if err := store.Delete(1); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLaneStoreKeepsInsertionOrder(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewLaneStore(log)

	for _, id := range []domain.LaneID{5, 2, 9, 7} {
		if err := store.Put(testLane(id)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	if err := store.Delete(9); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []domain.LaneID{5, 2, 7}
	got := store.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	lanes := store.List()
	if len(lanes) != 3 || lanes[2].ID() != 7 {
		t.Fatalf("unexpected list order")
	}

	store.Clear()
	if store.Len() != 0 {
		t.Fatalf("expected empty store after Clear, got %d", store.Len())
	}
}
