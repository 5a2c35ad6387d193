package family

import (
	"strings"

	"github.com/partdetect/partclass/mpn"
)

// Replaces reports whether a is an official replacement for b under the
// family policy. Cross-referenced second-source pairs are compatible in
// both directions; everything else requires both parts to be recognized
// members of the same series. The rating-monotonic policy is
// intentionally asymmetric: only the higher-rated part substitutes.
func (h *Handler) Replaces(a, b string) bool {
	ka := strings.ToUpper(mpn.StripPackageSuffix(a))
	kb := strings.ToUpper(mpn.StripPackageSuffix(b))
	if ka == "" || kb == "" {
		return false
	}

	if _, ok := h.crossRefs[ka+"\x00"+kb]; ok {
		return true
	}
	if !h.recognizes(ka) || !h.recognizes(kb) {
		return false
	}

	sa, sb := h.Series(ka), h.Series(kb)
	if sa == "" || sb == "" {
		return false
	}

	switch h.def.Replacement.Policy {
	case PolicyIdentity:
		return ka == kb
	case PolicyPackageOnly:
		// A family with a base prefix treats its series prefixes as
		// package variants of one another; otherwise the series must
		// match exactly.
		if h.def.Replacement.BasePrefix == "" && sa != sb {
			return false
		}
		base := h.baseKey(ka)
		return base != "" && base == h.baseKey(kb)
	case PolicyRatingMonotonic:
		// Every recognized part replaces itself, rated or not.
		if ka == kb {
			return true
		}
		if sa != sb {
			return false
		}
		ra, oka := h.rating(ka)
		rb, okb := h.rating(kb)
		return oka && okb && ra >= rb
	}
	return false
}

// rating resolves a part's numeric rating, falling back to the
// grade-letter-trimmed base so suffixed variants like RL207G share the
// plain part's table entry.
func (h *Handler) rating(upperBase string) (int, bool) {
	if r, ok := h.ratings[upperBase]; ok {
		return r, true
	}
	r, ok := h.ratings[upperBase[:len(upperBase)-len(trailingLetters(upperBase))]]
	return r, ok
}

// baseKey reduces a part number to the comparison key the package-only
// policy uses: packaging suffix stripped, package and grade designators
// trimmed from the tail, and series prefixes collapsed onto BasePrefix
// when the family sets one.
func (h *Handler) baseKey(upperBase string) string {
	base := upperBase
	if h.def.Package.Strategy == PackageSuffixMap {
		if code := h.longestCodeSuffix(base); code != "" {
			base = base[:len(base)-len(code)]
		}
	}
	base = base[:len(base)-len(trailingLetters(base))]
	if root := strings.ToUpper(h.def.Replacement.BasePrefix); root != "" {
		for _, prefix := range h.series {
			if strings.HasPrefix(base, prefix) {
				base = root + base[len(prefix):]
				break
			}
		}
	}
	return base
}
