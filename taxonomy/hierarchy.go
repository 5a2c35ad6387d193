package taxonomy

import (
	"fmt"
	"sort"
)

// Hierarchy holds the fixed parent relationships between specialized and
// generic kinds. It is built once at startup and read-only afterwards;
// every specialized kind has exactly one ancestor chain and the chain is
// acyclic by construction.
type Hierarchy struct {
	parent map[Kind]Kind
}

// NewHierarchy builds a hierarchy from a child -> parent map.
// A kind absent from the map (or present only as a value) is generic.
// Returns an error if any entry points at itself, at an empty kind, or
// participates in a cycle.
func NewHierarchy(parents map[Kind]Kind) (*Hierarchy, error) {
	h := &Hierarchy{parent: make(map[Kind]Kind, len(parents))}
	for child, parent := range parents {
		if child.IsZero() {
			return nil, fmt.Errorf("hierarchy: empty child kind")
		}
		if parent.IsZero() {
			return nil, fmt.Errorf("hierarchy: kind %q has empty parent", child)
		}
		if child == parent {
			return nil, fmt.Errorf("hierarchy: kind %q is its own parent", child)
		}
		h.parent[child] = parent
	}

	// Walk every chain to the root; a chain longer than the map has a cycle.
	for child := range h.parent {
		seen := 0
		for k := child; ; {
			p, ok := h.parent[k]
			if !ok {
				break
			}
			seen++
			if seen > len(h.parent) {
				return nil, fmt.Errorf("hierarchy: cycle through kind %q", child)
			}
			k = p
		}
	}

	return h, nil
}

// Parent returns the immediate ancestor of a kind, if it has one.
func (h *Hierarchy) Parent(k Kind) (Kind, bool) {
	p, ok := h.parent[k]
	return p, ok
}

// IsGeneric reports whether the kind has no ancestor.
func (h *Hierarchy) IsGeneric(k Kind) bool {
	_, ok := h.parent[k]
	return !ok
}

// Generalizes reports whether ancestor appears on the ancestor chain of k.
// A kind does not generalize itself.
func (h *Hierarchy) Generalizes(ancestor, k Kind) bool {
	if ancestor.IsZero() || k.IsZero() || ancestor == k {
		return false
	}
	for {
		p, ok := h.parent[k]
		if !ok {
			return false
		}
		if p == ancestor {
			return true
		}
		k = p
	}
}

// Children returns the kinds whose immediate parent is k, sorted by name.
func (h *Hierarchy) Children(k Kind) []Kind {
	var out []Kind
	for child, parent := range h.parent {
		if parent == k {
			out = append(out, child)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
