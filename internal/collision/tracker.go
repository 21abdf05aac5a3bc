package collision

import (
	"github.com/arloliu/vrtack/errs"
)

// Tracker tracks field names and detects hash collisions while a name index is built.
// It maintains a map of hash-to-name mappings and the ordered list of names so the
// index owner can fall back to exact string keys when two names share a hash.
type Tracker struct {
	names        map[uint64]string // Hash → name mapping for collision detection
	namesList    []string          // Ordered list of tracked names
	hasCollision bool              // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// Track records name under hash.
//
// Returns error if:
//   - The name is empty (ErrInvalidFieldName)
//   - The same name is tracked twice (ErrDuplicateFieldName)
//
// Different names with the same hash are not an error; HasCollision reports them
// and the caller decides how to disambiguate.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidFieldName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateFieldName
		}
		t.hasCollision = true
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision returns true if two different names were tracked under one hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order Track was called.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
