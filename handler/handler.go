// Package handler defines the contract every manufacturer-family handler
// implements against the pattern registry. Handlers are stateless
// capability bundles: they contribute patterns at registration time and
// afterwards answer pure string queries.
package handler

import (
	"github.com/partdetect/partclass/registry"
	"github.com/partdetect/partclass/taxonomy"
)

// Handler is implemented once per manufacturer family. All methods
// degrade to their empty/false identity on absent input and never panic
// on unrecognized part numbers.
type Handler interface {
	// Name identifies the family ("irf", "stm32", ...).
	Name() string

	// Register contributes the family's compiled patterns to the
	// registry. Called exactly once during the initialization phase.
	Register(reg *registry.Registry) error

	// Match reports whether the part number belongs to kind. A
	// specialized kind is tested against the family's own matchers; a
	// generic kind matches when any of the family's specialized kinds
	// that descend from it matches. Blank mpn or empty kind is false.
	Match(mpn string, kind taxonomy.Kind, reg *registry.Registry) bool

	// PackageCode returns the human-readable package designator
	// ("TO-220", "SOIC-8") encoded in the part number, or "" when the
	// input is blank or the code is unknown. Families that opt in may
	// return unmapped codes verbatim; that choice is per family and
	// documented on its definition.
	PackageCode(mpn string) string

	// Series returns the product-line prefix of the part number, or ""
	// for blank or unrecognized input. Longer, more specific prefixes
	// win over their shorter roots.
	Series(mpn string) string

	// Replaces reports whether a is an official replacement for b under
	// the family's compatibility policy. The relation is not symmetric
	// for every family; rating-based policies only allow the
	// higher-rated part to stand in for the lower-rated one.
	Replaces(a, b string) bool

	// Kinds returns the frozen set of kinds the family supports.
	// Mutating the returned set panics.
	Kinds() *taxonomy.Set
}
