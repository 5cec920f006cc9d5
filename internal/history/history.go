package history

import (
	"sync"
	"time"

	boltgroup "Boltex/internal/calc/boltgroup"
)

// SavedCalculation is a snapshot of one evaluation. It is a copy: later
// recomputations never touch it.
type SavedCalculation struct {
	ID      int              `json:"id"`
	SavedAt time.Time        `json:"saved_at"`
	Name    string           `json:"name"`
	Input   boltgroup.Input  `json:"input"`
	Result  boltgroup.Result `json:"result"`
}

// Store is an append-only in-memory history list. The mutex is needed because
// the host is a concurrent HTTP server.
type Store struct {
	mu    sync.Mutex
	items []SavedCalculation
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(name string, in boltgroup.Input, res boltgroup.Result) SavedCalculation {
	// Snapshot the per-bolt slice so the stored entry is decoupled from the
	// caller's result.
	bolts := make([]boltgroup.BoltForce, len(res.Bolts))
	copy(bolts, res.Bolts)
	res.Bolts = bolts

	s.mu.Lock()
	defer s.mu.Unlock()
	saved := SavedCalculation{
		ID:      len(s.items) + 1,
		SavedAt: time.Now(),
		Name:    name,
		Input:   in,
		Result:  res,
	}
	s.items = append(s.items, saved)
	return saved
}

// List returns the saved calculations in insertion order.
func (s *Store) List() []SavedCalculation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedCalculation, len(s.items))
	copy(out, s.items)
	return out
}
