package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partdetect/partclass/taxonomy"
)

func buildHandler(t *testing.T, def Definition) *Handler {
	t.Helper()
	parents := make(map[taxonomy.Kind]taxonomy.Kind)
	for _, kr := range def.Kinds {
		parents[kr.Kind] = kr.Parent
	}
	h, err := New(def, mustHierarchy(t, parents))
	require.NoError(t, err)
	return h
}

func TestPackageCodeFixed(t *testing.T) {
	def := acmeDef()
	def.Package = PackageRule{Strategy: PackageFixed, Fixed: "DO-15"}
	h := buildHandler(t, def)

	assert.Equal(t, "DO-15", h.PackageCode("XY123"))
	assert.Equal(t, "", h.PackageCode("Z999"))
	assert.Equal(t, "", h.PackageCode(""))
}

func TestPackageCodeSuffixMap(t *testing.T) {
	def := Definition{
		Name: "maxlike",
		Kinds: []KindRegistration{{
			Kind:     "transceiver:maxlike",
			Parent:   taxonomy.Transceiver,
			Patterns: []string{`MAX\d{4}[A-Z]{1,4}`},
		}},
		Series: []string{"MAX"},
		Package: PackageRule{
			Strategy: PackageSuffixMap,
			Codes:    map[string]string{"ESA": "SOIC-8", "SA": "SOIC-8N", "EPA": "PDIP-8"},
		},
		Replacement: ReplacementRule{Policy: PolicyPackageOnly},
	}
	h := buildHandler(t, def)

	// The longest code wins when codes overlap as suffixes.
	assert.Equal(t, "SOIC-8", h.PackageCode("MAX3483EESA"))
	assert.Equal(t, "SOIC-8", h.PackageCode("MAX3483EESA+"))
	assert.Equal(t, "PDIP-8", h.PackageCode("max3483eepa"))
	assert.Equal(t, "", h.PackageCode("MAX3483EEXX"))
}

func TestPackageCodeTrailingLetters(t *testing.T) {
	def := acmeDef()
	def.Package = PackageRule{
		Strategy: PackageTrailingLetters,
		Codes:    map[string]string{"A": "TO-220", "AB": "TO-247"},
	}
	h := buildHandler(t, def)

	assert.Equal(t, "TO-220", h.PackageCode("XY123A"))
	assert.Equal(t, "", h.PackageCode("XY123"))

	// Unknown trailing code maps to nothing unless the family keeps raw.
	assert.Equal(t, "", h.PackageCode("XY123Z"))

	def.Package.KeepRaw = true
	h = buildHandler(t, def)
	assert.Equal(t, "Z", h.PackageCode("XY123Z"))
}

func TestPackageCodeCapture(t *testing.T) {
	def := acmeDef()
	def.Kinds[0].Patterns = []string{`XY[PB]?\d{3}`}
	def.Series = []string{"XYP", "XYB", "XY"}
	def.Package = PackageRule{
		Strategy: PackageCapture,
		Capture:  `^XY([PB])\d`,
		Codes:    map[string]string{"P": "TO-247", "B": "TO-220"},
	}
	h := buildHandler(t, def)

	assert.Equal(t, "TO-247", h.PackageCode("XYP123"))
	assert.Equal(t, "TO-220", h.PackageCode("xyb123"))
	assert.Equal(t, "", h.PackageCode("XY123"))
}
