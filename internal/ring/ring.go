package ring

import (
	"errors"
	"sync"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

// Capacity is the maximum number of boxers allowed in the ring at once.
const Capacity = 2

var (
	ErrRingFull        = errors.New("ring is full, cannot add more boxers")
	ErrNotEnoughBoxers = errors.New("there must be two boxers to start a fight")
)

// Ring is the transient, process-local set of boxers eligible to fight.
// Safe for concurrent use.
type Ring struct {
	mu     sync.Mutex
	boxers []boxer.Boxer
}

// New returns an empty ring.
func New() *Ring {
	return &Ring{}
}

// Enter adds a boxer to the ring, rejecting entries past capacity.
func (r *Ring) Enter(b boxer.Boxer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.boxers) >= Capacity {
		return ErrRingFull
	}
	r.boxers = append(r.boxers, b)
	return nil
}

// Clear empties the ring. Clearing an already-empty ring is a no-op.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boxers = nil
}

// Boxers returns a copy of the current occupants in entry order.
func (r *Ring) Boxers() []boxer.Boxer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]boxer.Boxer, len(r.boxers))
	copy(out, r.boxers)
	return out
}

// Len reports the current occupant count.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boxers)
}
