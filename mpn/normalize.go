// Package mpn normalizes manufacturer part numbers: it strips trailing
// packaging/ordering markers, generates search variations, and tests
// cross-suffix equivalence. It is independent of manufacturer identity.
//
// The suffix grammar is small and delimiter-anchored: a trailing "+"
// marker (optionally followed by a tape-and-reel tail), a "#" followed by
// known ordering codes, a "/" ordering tail (which may contain commas),
// or a bare "," with an alphanumeric tail. A trailing letter with no
// delimiter is never treated as a suffix; it is usually part of the base
// designator.
package mpn

import (
	"regexp"
	"strings"
)

// Ordering codes accepted after a '#' delimiter, longest first so that
// greedy decomposition never leaves a consumable remainder.
var orderingCodes = []string{"TRPBF", "PBF", "TRM", "TR"}

var (
	plusTail  = regexp.MustCompile(`^[0-9A-Za-z]*$`)
	slashTail = regexp.MustCompile(`^[0-9A-Za-z]+(?:,[0-9A-Za-z]+)*$`)
	commaTail = regexp.MustCompile(`^[0-9A-Za-z]+$`)
)

// StripPackageSuffix returns the part number with any trailing
// packaging/ordering marker removed. Whitespace is trimmed; blank input
// yields "".
func StripPackageSuffix(s string) string {
	base, _, _ := split(strings.TrimSpace(s))
	return base
}

// PackageSuffix returns the delimiter-plus-payload substring removed by
// StripPackageSuffix, if any.
func PackageSuffix(s string) (string, bool) {
	_, suffix, ok := split(strings.TrimSpace(s))
	return suffix, ok
}

// SearchVariations returns the lookup candidates for a part number, most
// literal first: the trimmed original, then the suffix-stripped base when
// it differs. Blank input yields nil.
func SearchVariations(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	out := []string{trimmed}
	if base, _, ok := split(trimmed); ok && base != trimmed {
		out = append(out, base)
	}
	return out
}

// Equivalent reports whether two part numbers reduce to the same base
// string once packaging suffixes are stripped. Comparison is
// case-insensitive; blank input on either side is never equivalent.
func Equivalent(a, b string) bool {
	ta, tb := strings.TrimSpace(a), strings.TrimSpace(b)
	if ta == "" || tb == "" {
		return false
	}
	return strings.EqualFold(StripPackageSuffix(ta), StripPackageSuffix(tb))
}

// split locates the earliest delimiter whose payload the grammar accepts
// and divides the trimmed input there. base+suffix always reproduces the
// input exactly.
func split(trimmed string) (base, suffix string, ok bool) {
	for i := 0; i < len(trimmed); i++ {
		if i == 0 {
			continue // a suffix needs a non-empty base
		}
		tail := trimmed[i+1:]
		switch trimmed[i] {
		case '+':
			if plusTail.MatchString(tail) {
				return trimmed[:i], trimmed[i:], true
			}
		case '#':
			if orderingPayload(tail) {
				return trimmed[:i], trimmed[i:], true
			}
		case '/':
			if slashTail.MatchString(tail) {
				return trimmed[:i], trimmed[i:], true
			}
		case ',':
			if commaTail.MatchString(tail) {
				return trimmed[:i], trimmed[i:], true
			}
		}
	}
	return trimmed, "", false
}

// orderingPayload reports whether a '#' payload is made up entirely of
// known ordering codes. Repeated '#' separators collapse into the same
// removal ("#PBF#TR" and "#TRPBF" both qualify).
func orderingPayload(tail string) bool {
	if tail == "" {
		return false
	}
	for _, segment := range strings.Split(strings.ToUpper(tail), "#") {
		if segment == "" || !decomposes(segment) {
			return false
		}
	}
	return true
}

func decomposes(segment string) bool {
	for segment != "" {
		matched := false
		for _, code := range orderingCodes {
			if strings.HasPrefix(segment, code) {
				segment = segment[len(code):]
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
