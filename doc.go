// Package partclass classifies electronic-component manufacturer part
// numbers (MPNs) into a typed taxonomy, extracts structured attributes
// (package code, product series), and decides whether two MPNs denote
// officially interchangeable parts.
//
// # Architecture
//
// The module is a pure in-memory string library with a single
// initialization phase and no I/O:
//
//	┌─────────────────────────────────────┐
//	│             Engine                  │  whole-catalog dispatch
//	│ (Classify, Series, PackageCode,     │
//	│  Replaces, Equivalent)              │
//	└─────────────────────────────────────┘
//	           ↓ consults
//	┌─────────────────────────────────────┐
//	│        Family Handlers              │  one per manufacturer family,
//	│  (match, extract, replacement)      │  built from rule-table data
//	└─────────────────────────────────────┘
//	           ↓ registered into
//	┌─────────────────────────────────────┐
//	│  Pattern Registry + Type Hierarchy  │  ordered compiled matchers,
//	│                                     │  specialized → generic kinds
//	└─────────────────────────────────────┘
//
// The mpn package underneath is manufacturer-agnostic: it strips the
// small delimiter-anchored suffix grammar vendors use for packaging and
// ordering markers ("+", "#PBF", "/CM,118", ",118") and derives the
// search variations every lookup path tries.
//
// Typical usage:
//
//	eng, err := engine.Default()
//	if err != nil { ... }
//	eng.Classify("STM32F103C8T6", taxonomy.Microcontroller) // true
//	eng.Series("IRFP460")                                   // "IRFP"
//	eng.PackageCode("MAX3483EESA+")                         // "SOIC-8"
//	eng.Replaces("RL207", "RL204")                          // true, not symmetric
//
// All operations degrade to empty/false identity values on absent or
// unrecognized input; nothing on the query path returns an error or
// panics. The one deliberate exception: mutating a handler's frozen
// supported-kind set panics, catching encapsulation violations early.
package partclass
