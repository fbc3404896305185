// Package selection maintains the bounded, de-duplicated set of items
// the user is assembling for export.
package selection

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tilefish/packmule/pkg/catalog"
)

var (
	ErrAlreadySelected = errors.New("item already selected")
	ErrLimitReached    = errors.New("selection limit reached")
)

const (
	DefaultCapacity = 5
	MinCapacity     = 1
	MaxCapacity     = 999
)

// Entry wraps one selected item with its quantity. Entries are owned by
// a Set; quantity always stays within [1, Item.MaxStack].
type Entry struct {
	Item     catalog.Item
	Quantity int
}

// Set is an ordered sequence of entries, capacity bounded, with at most
// one entry per (Id, Kind) pair.
type Set struct {
	entries  []*Entry
	capacity int
}

func NewSet() *Set {
	return &Set{capacity: DefaultCapacity}
}

// Add appends item with quantity 1. Duplicates (same Id and Kind) and
// additions past capacity are rejected without mutating the set.
func (s *Set) Add(item catalog.Item) (*Entry, error) {
	if s.Contains(item) {
		return nil, ErrAlreadySelected
	}
	if len(s.entries) >= s.capacity {
		return nil, ErrLimitReached
	}
	e := &Entry{Item: item, Quantity: 1}
	s.entries = append(s.entries, e)
	return e, nil
}

// Remove deletes entry from the set. Unknown entries are a no-op.
func (s *Set) Remove(entry *Entry) {
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// SetQuantity parses raw as an integer and applies it to entry, clamped
// to [1, MaxStack]. Unparseable input leaves the quantity unchanged.
func (s *Set) SetQuantity(entry *Entry, raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	entry.Quantity = clamp(n, 1, entry.Item.MaxStack)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.entries = nil
}

// SetCapacity changes the configured maximum, clamped to
// [MinCapacity, MaxCapacity]. Existing entries are never evicted: a cap
// below the current count only blocks further adds.
func (s *Set) SetCapacity(n int) {
	s.capacity = clamp(n, MinCapacity, MaxCapacity)
}

func (s *Set) Capacity() int {
	return s.capacity
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the selection in insertion order.
func (s *Set) Entries() []*Entry {
	return s.entries
}

// Remaining reports how many more items can be added.
func (s *Set) Remaining() int {
	r := s.capacity - len(s.entries)
	if r < 0 {
		return 0
	}
	return r
}

// Contains reports whether an entry for the same (Id, Kind) exists.
func (s *Set) Contains(item catalog.Item) bool {
	for _, e := range s.entries {
		if e.Item.Id == item.Id && e.Item.Type == item.Type {
			return true
		}
	}
	return false
}

// CanAdd reports whether Add would succeed for item.
func (s *Set) CanAdd(item catalog.Item) bool {
	return !s.Contains(item) && len(s.entries) < s.capacity
}

// CanSave reports whether the selection is exportable to dest.
func (s *Set) CanSave(dest string) bool {
	return len(s.entries) > 0 && dest != ""
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
