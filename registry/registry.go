// Package registry implements the in-memory pattern registry that maps
// component kinds to ordered, compiled matchers. Handlers register their
// patterns during a single initialization phase; after that the registry
// is treated as read-only and safe for concurrent lookups.
package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/partdetect/partclass/taxonomy"
)

// Registry maps component kinds to the matchers contributed for them.
// Multiple handlers may register into the same kind; duplicates are
// intentional. Precedence within a kind is slice order, which is
// registration order, never pattern specificity.
type Registry struct {
	mu      sync.RWMutex
	entries map[taxonomy.Kind][]*regexp.Regexp
}

// New creates an empty pattern registry.
func New() *Registry {
	return &Registry{entries: make(map[taxonomy.Kind][]*regexp.Regexp)}
}

// Register compiles expr case-insensitively, anchored to the whole
// input, and appends it to the matchers for kind. Call order determines
// match precedence for that kind.
func (r *Registry) Register(kind taxonomy.Kind, expr string) error {
	if kind.IsZero() {
		return fmt.Errorf("registry: empty kind")
	}
	if expr == "" {
		return fmt.Errorf("registry: empty pattern for kind %q", kind)
	}

	pattern, err := regexp.Compile(`(?i)^(?:` + expr + `)$`)
	if err != nil {
		return fmt.Errorf("registry: compile pattern for kind %q: %w", kind, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = append(r.entries[kind], pattern)
	return nil
}

// Matches reports whether text matches any matcher registered for kind,
// testing them in registration order and stopping at the first hit.
// Blank text or an empty kind never matches. This is the canonical
// classification path.
func (r *Registry) Matches(text string, kind taxonomy.Kind) bool {
	text = strings.TrimSpace(text)
	if text == "" || kind.IsZero() {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pattern := range r.entries[kind] {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// FirstPattern returns only the first-registered matcher for kind. It
// exists for introspection and documentation; when a kind has more than
// one contributor the later matchers are not reachable through it, so it
// must not be used to decide classification. Use Matches for that.
func (r *Registry) FirstPattern(kind taxonomy.Kind) (*regexp.Regexp, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	patterns := r.entries[kind]
	if len(patterns) == 0 {
		return nil, false
	}
	return patterns[0], true
}

// Count returns the number of matchers registered for kind.
func (r *Registry) Count(kind taxonomy.Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries[kind])
}

// Kinds returns every kind with at least one matcher, sorted by name.
func (r *Registry) Kinds() []taxonomy.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]taxonomy.Kind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
