package family

import (
	"strings"

	"github.com/partdetect/partclass/mpn"
)

// PackageCode returns the package designator encoded in the part number,
// or "" for blank/unrecognized input and for codes absent from the
// family's table unless the family sets keep_raw.
func (h *Handler) PackageCode(part string) string {
	base := strings.ToUpper(mpn.StripPackageSuffix(part))
	if base == "" || !h.recognizes(base) {
		return ""
	}

	switch h.def.Package.Strategy {
	case PackageFixed:
		return h.def.Package.Fixed
	case PackageSuffixMap:
		code := h.longestCodeSuffix(base)
		return h.resolve(code)
	case PackageTrailingLetters:
		run := trailingLetters(base)
		if code := h.longestCodeSuffix(run); code != "" {
			return h.resolve(code)
		}
		if run != "" && h.def.Package.KeepRaw {
			return run
		}
		return ""
	case PackageCapture:
		m := h.capture.FindStringSubmatch(base)
		if len(m) < 2 || m[1] == "" {
			return ""
		}
		return h.resolve(strings.ToUpper(m[1]))
	default:
		return ""
	}
}

// resolve maps a code through the family table, honoring keep_raw for
// unmapped codes.
func (h *Handler) resolve(code string) string {
	if code == "" {
		return ""
	}
	if name, ok := h.codes[code]; ok {
		return name
	}
	if h.def.Package.KeepRaw {
		return code
	}
	return ""
}

// longestCodeSuffix returns the longest known code that ends s, or "".
func (h *Handler) longestCodeSuffix(s string) string {
	best := ""
	for code := range h.codes {
		if len(code) > len(best) && strings.HasSuffix(s, code) {
			best = code
		}
	}
	return best
}

// trailingLetters returns the trailing alphabetic run of s.
func trailingLetters(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			break
		}
		i--
	}
	return s[i:]
}
