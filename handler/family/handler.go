package family

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/partdetect/partclass/mpn"
	"github.com/partdetect/partclass/registry"
	"github.com/partdetect/partclass/taxonomy"
)

// Handler is the generic family handler. It is stateless after New:
// every field is fixed at construction and safe for concurrent use.
type Handler struct {
	def       Definition
	hierarchy *taxonomy.Hierarchy
	kinds     *taxonomy.Set

	// series prefixes sorted longest first so a four-letter sub-family
	// prefix is always reported before its three-letter root.
	series []string

	// Own compiled matchers, in registration order per kind. Replaces
	// and PackageCode need recognition without a registry in hand.
	matchers map[taxonomy.Kind][]*regexp.Regexp

	capture   *regexp.Regexp
	codes     map[string]string
	ratings   map[string]int
	crossRefs map[string]struct{}
}

// New builds a handler from a validated definition. The hierarchy must
// already contain the parent entries for every kind the family registers.
func New(def Definition, hierarchy *taxonomy.Hierarchy) (*Handler, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if hierarchy == nil {
		return nil, fmt.Errorf("family %s: nil hierarchy", def.Name)
	}

	h := &Handler{
		def:       def,
		hierarchy: hierarchy,
		matchers:  make(map[taxonomy.Kind][]*regexp.Regexp, len(def.Kinds)),
		codes:     make(map[string]string, len(def.Package.Codes)),
		ratings:   make(map[string]int, len(def.Replacement.Ratings)),
		crossRefs: make(map[string]struct{}, len(def.CrossRefs)*2),
	}

	kinds := taxonomy.NewSet()
	for _, kr := range def.Kinds {
		if p, ok := hierarchy.Parent(kr.Kind); !ok || p != kr.Parent {
			return nil, fmt.Errorf("family %s: kind %q is not a child of %q in the hierarchy",
				def.Name, kr.Kind, kr.Parent)
		}
		kinds.Add(kr.Kind)
		for _, expr := range kr.Patterns {
			re, err := regexp.Compile(`(?i)^(?:` + expr + `)$`)
			if err != nil {
				return nil, fmt.Errorf("family %s: compile pattern for kind %q: %w", def.Name, kr.Kind, err)
			}
			h.matchers[kr.Kind] = append(h.matchers[kr.Kind], re)
		}
	}
	h.kinds = kinds.Freeze()

	h.series = append(h.series, def.Series...)
	for i := range h.series {
		h.series[i] = strings.ToUpper(h.series[i])
	}
	sort.Slice(h.series, func(i, j int) bool {
		if len(h.series[i]) != len(h.series[j]) {
			return len(h.series[i]) > len(h.series[j])
		}
		return h.series[i] < h.series[j]
	})

	if def.Package.Capture != "" {
		re, err := regexp.Compile(`(?i)` + def.Package.Capture)
		if err != nil {
			return nil, fmt.Errorf("family %s: compile package capture: %w", def.Name, err)
		}
		h.capture = re
	}
	for code, name := range def.Package.Codes {
		h.codes[strings.ToUpper(code)] = name
	}
	for base, rating := range def.Replacement.Ratings {
		h.ratings[strings.ToUpper(base)] = rating
	}
	for _, xr := range def.CrossRefs {
		a := strings.ToUpper(mpn.StripPackageSuffix(xr.A))
		b := strings.ToUpper(mpn.StripPackageSuffix(xr.B))
		h.crossRefs[a+"\x00"+b] = struct{}{}
		h.crossRefs[b+"\x00"+a] = struct{}{}
	}

	return h, nil
}

// Name returns the family identifier.
func (h *Handler) Name() string {
	return h.def.Name
}

// Kinds returns the frozen set of kinds the family supports.
func (h *Handler) Kinds() *taxonomy.Set {
	return h.kinds
}

// Register contributes the family's patterns to the shared registry,
// preserving definition order per kind.
func (h *Handler) Register(reg *registry.Registry) error {
	for _, kr := range h.def.Kinds {
		for _, expr := range kr.Patterns {
			if err := reg.Register(kr.Kind, expr); err != nil {
				return fmt.Errorf("family %s: %w", h.def.Name, err)
			}
		}
	}
	return nil
}

// Match reports whether the part number belongs to kind. Specialized
// kinds are tested against the registry directly; a generic ancestor
// kind matches when any of the family's specialized kinds descending
// from it matches, so the two paths cannot drift apart.
func (h *Handler) Match(part string, kind taxonomy.Kind, reg *registry.Registry) bool {
	if kind.IsZero() || reg == nil {
		return false
	}
	variations := mpn.SearchVariations(part)
	if len(variations) == 0 {
		return false
	}

	if h.kinds.Has(kind) {
		return matchAny(reg, variations, kind)
	}
	for _, k := range h.kinds.Kinds() {
		if h.hierarchy.Generalizes(kind, k) && matchAny(reg, variations, k) {
			return true
		}
	}
	return false
}

func matchAny(reg *registry.Registry, variations []string, kind taxonomy.Kind) bool {
	for _, v := range variations {
		if reg.Matches(v, kind) {
			return true
		}
	}
	return false
}

// Series returns the longest matching series prefix of the part number,
// or "" when blank or unrecognized.
func (h *Handler) Series(part string) string {
	base := strings.ToUpper(mpn.StripPackageSuffix(part))
	if base == "" {
		return ""
	}
	for _, prefix := range h.series {
		if strings.HasPrefix(base, prefix) {
			return prefix
		}
	}
	return ""
}

// recognizes reports whether any search variation of the part number
// matches the family's own patterns, independent of the shared registry.
func (h *Handler) recognizes(part string) bool {
	for _, v := range mpn.SearchVariations(part) {
		for _, res := range h.matchers {
			for _, re := range res {
				if re.MatchString(v) {
					return true
				}
			}
		}
	}
	return false
}
