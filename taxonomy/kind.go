package taxonomy

import "strings"

// Kind identifies a class of component in the classification taxonomy.
// A kind is either generic ("mosfet") or vendor-specialized ("mosfet:irf").
// Specialization is authoritative only through a Hierarchy; the string form
// is a naming convention, not a relationship.
type Kind string

// Generic kinds shipped with the engine. Vendor-specialized kinds are
// declared by family definitions at catalog build time.
const (
	Microcontroller  Kind = "microcontroller"
	MOSFET           Kind = "mosfet"
	VoltageRegulator Kind = "voltage-regulator"
	Diode            Kind = "diode"
	Transceiver      Kind = "transceiver"
	OpAmp            Kind = "op-amp"
)

// IsZero reports whether the kind is unset.
func (k Kind) IsZero() bool {
	return k == ""
}

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// Specialize derives a vendor-specialized kind name from a generic one.
// The returned kind still needs a Hierarchy entry to participate in
// generic-kind fallback.
func (k Kind) Specialize(qualifier string) Kind {
	return Kind(string(k) + ":" + qualifier)
}

// Qualifier returns the vendor qualifier of a specialized kind name,
// or "" for a generic kind.
func (k Kind) Qualifier() string {
	if i := strings.IndexByte(string(k), ':'); i >= 0 {
		return string(k)[i+1:]
	}
	return ""
}
