package svc

import (
	"sync"
	"testing"

	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

func TestGameSetLifecycle(t *testing.T) {
	set := NewGameSet()

	uid, entry := set.New()
	if entry == nil {
		t.Fatal("New returned nil entry")
	}

	got, ok := set.Get(uid)
	if !ok || got != entry {
		t.Fatal("Get did not return the registered entry")
	}

	set.Delete(uid)
	if _, ok := set.Get(uid); ok {
		t.Error("deleted game still registered")
	}
}

func TestGameEntrySerializesAccess(t *testing.T) {
	set := NewGameSet()
	_, entry := set.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = entry.Do(func(g *tafl.Game) error {
				moves := g.LegalMoves()
				if len(moves) == 0 {
					return nil
				}
				return g.ApplyMove(moves[0])
			})
		}()
	}
	wg.Wait()

	err := entry.Do(func(g *tafl.Game) error {
		if g.StepCount() == 0 {
			t.Error("no move went through")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
