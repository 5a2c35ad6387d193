// Package catalog assembles the classification catalog: it parses family
// definitions, builds the type hierarchy, constructs one handler per
// family, and seeds the pattern registry. Assembly happens once at
// startup; the resulting catalog is read-only.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/partdetect/partclass/handler"
	"github.com/partdetect/partclass/handler/family"
	"github.com/partdetect/partclass/internal/logging"
	"github.com/partdetect/partclass/registry"
	"github.com/partdetect/partclass/taxonomy"
)

//go:embed families.yaml
var builtin []byte

type document struct {
	Families []family.Definition `yaml:"families"`
}

// ParseDefinitions decodes family definitions from a YAML document.
func ParseDefinitions(data []byte) ([]family.Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse definitions: %w", err)
	}
	if len(doc.Families) == 0 {
		return nil, fmt.Errorf("catalog: no families defined")
	}
	return doc.Families, nil
}

// BuiltinDefinitions returns the family definitions embedded with the
// library.
func BuiltinDefinitions() ([]family.Definition, error) {
	return ParseDefinitions(builtin)
}

// Catalog owns the assembled hierarchy, registry, and handlers.
type Catalog struct {
	hierarchy *taxonomy.Hierarchy
	registry  *registry.Registry
	handlers  []handler.Handler
}

// Option configures catalog assembly.
type Option func(*options)

type options struct {
	log      *logging.Logger
	disabled map[string]struct{}
}

// WithLogger enables assembly diagnostics.
func WithLogger(log *logging.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDisabledFamilies skips the named families during assembly.
func WithDisabledFamilies(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.disabled[n] = struct{}{}
		}
	}
}

// New assembles a catalog from the given definitions.
func New(defs []family.Definition, opts ...Option) (*Catalog, error) {
	o := &options{log: logging.NewNop(), disabled: make(map[string]struct{})}
	for _, opt := range opts {
		opt(o)
	}

	var enabled []family.Definition
	for _, def := range defs {
		if _, skip := o.disabled[def.Name]; skip {
			o.log.Debug("skipping disabled family", zap.String("family", def.Name))
			continue
		}
		enabled = append(enabled, def)
	}
	if len(enabled) == 0 {
		return nil, fmt.Errorf("catalog: all families disabled")
	}

	hierarchy, err := buildHierarchy(enabled)
	if err != nil {
		return nil, err
	}

	c := &Catalog{hierarchy: hierarchy, registry: registry.New()}
	for _, def := range enabled {
		h, err := family.New(def, hierarchy)
		if err != nil {
			return nil, err
		}
		if err := h.Register(c.registry); err != nil {
			return nil, err
		}
		c.handlers = append(c.handlers, h)
		o.log.Debug("registered family",
			zap.String("family", h.Name()),
			zap.Int("kinds", h.Kinds().Len()))
	}

	return c, nil
}

// Load assembles the catalog from the built-in definitions.
func Load(opts ...Option) (*Catalog, error) {
	defs, err := BuiltinDefinitions()
	if err != nil {
		return nil, err
	}
	return New(defs, opts...)
}

// buildHierarchy derives the parent map from the definitions. Two
// families may not claim the same kind under different parents.
func buildHierarchy(defs []family.Definition) (*taxonomy.Hierarchy, error) {
	parents := make(map[taxonomy.Kind]taxonomy.Kind)
	for _, def := range defs {
		for _, kr := range def.Kinds {
			if existing, ok := parents[kr.Kind]; ok && existing != kr.Parent {
				return nil, fmt.Errorf("catalog: kind %q declared under both %q and %q",
					kr.Kind, existing, kr.Parent)
			}
			parents[kr.Kind] = kr.Parent
		}
	}
	return taxonomy.NewHierarchy(parents)
}

// Hierarchy returns the assembled type hierarchy.
func (c *Catalog) Hierarchy() *taxonomy.Hierarchy {
	return c.hierarchy
}

// Registry returns the seeded pattern registry.
func (c *Catalog) Registry() *registry.Registry {
	return c.registry
}

// Handlers returns the assembled handlers in definition order.
func (c *Catalog) Handlers() []handler.Handler {
	return c.handlers
}
