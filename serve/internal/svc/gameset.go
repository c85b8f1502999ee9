package svc

import (
	"sync"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

// GameSet is the in-memory registry of running games. Every game carries its
// own mutex: a human move and an AI move against the same game can never
// overlap, which the rules engine requires of its host.
type GameSet struct {
	mu    sync.RWMutex
	games map[message.GameUid]*GameEntry
}

type GameEntry struct {
	mu   sync.Mutex
	game *tafl.Game
}

func NewGameSet() *GameSet {
	return &GameSet{games: make(map[message.GameUid]*GameEntry)}
}

// New registers a fresh game under a new uid.
func (s *GameSet) New() (message.GameUid, *GameEntry) {
	uid := message.NewGameUid()
	entry := &GameEntry{game: tafl.NewGame()}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[uid] = entry
	return uid, entry
}

func (s *GameSet) Get(uid message.GameUid) (*GameEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.games[uid]
	return entry, ok
}

func (s *GameSet) Delete(uid message.GameUid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, uid)
}

// Do runs f with exclusive access to the entry's game.
func (e *GameEntry) Do(f func(*tafl.Game) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return f(e.game)
}
