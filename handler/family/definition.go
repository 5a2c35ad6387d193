// Package family implements the generic, data-driven manufacturer-family
// handler. A family is described entirely by a Definition (patterns,
// series prefixes, package-code strategy, replacement policy); the engine
// itself carries no vendor-specific literals.
package family

import (
	"fmt"

	"github.com/partdetect/partclass/taxonomy"
)

// Package-code extraction strategies.
const (
	// PackageNone means the family encodes no package information.
	PackageNone = ""
	// PackageFixed returns the same designator for every member.
	PackageFixed = "fixed"
	// PackageSuffixMap looks up the longest known code that ends the
	// suffix-stripped part number.
	PackageSuffixMap = "suffix-map"
	// PackageTrailingLetters looks up the trailing alphabetic run.
	PackageTrailingLetters = "trailing-letters"
	// PackageCapture applies a regular expression with one capture
	// group and looks up the captured code.
	PackageCapture = "capture"
)

// Replacement policies.
const (
	// PolicyIdentity accepts only the same base part number
	// (case-insensitive, packaging suffix ignored).
	PolicyIdentity = "identity"
	// PolicyPackageOnly accepts members of the same series whose base
	// numbers differ only in package/grade designators.
	PolicyPackageOnly = "package-only"
	// PolicyRatingMonotonic accepts a higher-rated part as a
	// replacement for a lower-rated one within the same series, never
	// the reverse.
	PolicyRatingMonotonic = "rating-monotonic"
)

// KindRegistration binds one specialized kind to the patterns the family
// contributes for it. List more specific patterns first; registration
// order is match precedence.
type KindRegistration struct {
	Kind     taxonomy.Kind `yaml:"kind"`
	Parent   taxonomy.Kind `yaml:"parent"`
	Patterns []string      `yaml:"patterns"`
}

// PackageRule selects and parameterizes the package-code strategy.
// KeepRaw opts the family into returning unmapped codes verbatim; the
// default is to return "" for codes absent from the table.
type PackageRule struct {
	Strategy string            `yaml:"strategy"`
	Codes    map[string]string `yaml:"codes"`
	Capture  string            `yaml:"capture"`
	Fixed    string            `yaml:"fixed"`
	KeepRaw  bool              `yaml:"keep_raw"`
}

// ReplacementRule selects the family's compatibility policy. Ratings maps
// base part numbers to their numeric rating for the monotonic policy.
// BasePrefix, when set, collapses the family's series prefixes to a
// common root before base comparison (IRFP460 and IRFB460 share the base
// IRF460).
type ReplacementRule struct {
	Policy     string         `yaml:"policy"`
	Ratings    map[string]int `yaml:"ratings"`
	BasePrefix string         `yaml:"base_prefix"`
}

// CrossRef is one entry of the explicit second-source allow-list. The
// pair is compatible in both directions regardless of naming convention.
type CrossRef struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// Definition is the complete rule table for one manufacturer family.
type Definition struct {
	Name        string             `yaml:"name"`
	Kinds       []KindRegistration `yaml:"kinds"`
	Series      []string           `yaml:"series"`
	Package     PackageRule        `yaml:"package"`
	Replacement ReplacementRule    `yaml:"replacement"`
	CrossRefs   []CrossRef         `yaml:"cross_refs"`
}

// Validate checks the definition for structural defects that would
// otherwise surface as silent misclassification at query time.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("family: definition without a name")
	}
	if len(d.Kinds) == 0 {
		return fmt.Errorf("family %s: no kind registrations", d.Name)
	}
	for _, kr := range d.Kinds {
		if kr.Kind.IsZero() {
			return fmt.Errorf("family %s: kind registration without a kind", d.Name)
		}
		if kr.Parent.IsZero() {
			return fmt.Errorf("family %s: kind %q without a parent", d.Name, kr.Kind)
		}
		if len(kr.Patterns) == 0 {
			return fmt.Errorf("family %s: kind %q without patterns", d.Name, kr.Kind)
		}
	}
	if len(d.Series) == 0 {
		return fmt.Errorf("family %s: no series prefixes", d.Name)
	}
	switch d.Package.Strategy {
	case PackageNone, PackageFixed, PackageSuffixMap, PackageTrailingLetters, PackageCapture:
	default:
		return fmt.Errorf("family %s: unknown package strategy %q", d.Name, d.Package.Strategy)
	}
	if d.Package.Strategy == PackageCapture && d.Package.Capture == "" {
		return fmt.Errorf("family %s: capture strategy without a capture expression", d.Name)
	}
	if d.Package.Strategy == PackageFixed && d.Package.Fixed == "" {
		return fmt.Errorf("family %s: fixed strategy without a designator", d.Name)
	}
	switch d.Replacement.Policy {
	case PolicyIdentity, PolicyPackageOnly, PolicyRatingMonotonic:
	default:
		return fmt.Errorf("family %s: unknown replacement policy %q", d.Name, d.Replacement.Policy)
	}
	if d.Replacement.Policy == PolicyRatingMonotonic && len(d.Replacement.Ratings) == 0 {
		return fmt.Errorf("family %s: rating-monotonic policy without ratings", d.Name)
	}
	for _, xr := range d.CrossRefs {
		if xr.A == "" || xr.B == "" {
			return fmt.Errorf("family %s: cross reference with a blank side", d.Name)
		}
	}
	return nil
}
