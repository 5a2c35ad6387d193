package taxonomy

import (
	"errors"
	"sort"
)

// ErrFrozenSet is the panic value raised when a frozen kind set is mutated.
var ErrFrozenSet = errors.New("taxonomy: kind set is frozen")

// Set is a collection of kinds that can be frozen after construction.
// Handlers hand out frozen sets so a caller that tries to mutate the
// supported-kind list fails loudly instead of corrupting shared state.
type Set struct {
	kinds  map[Kind]struct{}
	frozen bool
}

// NewSet builds a mutable set seeded with the given kinds.
func NewSet(kinds ...Kind) *Set {
	s := &Set{kinds: make(map[Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		s.kinds[k] = struct{}{}
	}
	return s
}

// Add inserts a kind. Panics with ErrFrozenSet if the set is frozen.
func (s *Set) Add(k Kind) *Set {
	if s.frozen {
		panic(ErrFrozenSet)
	}
	s.kinds[k] = struct{}{}
	return s
}

// Freeze marks the set read-only and returns it. Freezing twice is a no-op.
func (s *Set) Freeze() *Set {
	s.frozen = true
	return s
}

// Frozen reports whether the set is read-only.
func (s *Set) Frozen() bool {
	return s.frozen
}

// Has reports whether the set contains k.
func (s *Set) Has(k Kind) bool {
	_, ok := s.kinds[k]
	return ok
}

// Len returns the number of kinds in the set.
func (s *Set) Len() int {
	return len(s.kinds)
}

// Kinds returns the members sorted by name. The slice is a copy.
func (s *Set) Kinds() []Kind {
	out := make([]Kind, 0, len(s.kinds))
	for k := range s.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
