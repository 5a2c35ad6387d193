package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/partdetect/partclass/taxonomy"
)

func TestRegisterValidation(t *testing.T) {
	r := New()
	assert.Error(t, r.Register("", `ABC\d+`))
	assert.Error(t, r.Register(taxonomy.MOSFET, ""))
	assert.Error(t, r.Register(taxonomy.MOSFET, `(`))
	assert.NoError(t, r.Register(taxonomy.MOSFET, `IRF\d{3}`))
}

func TestMatchesEmptyInput(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRF\d{3}`))

	assert.False(t, r.Matches("", taxonomy.MOSFET))
	assert.False(t, r.Matches("   ", taxonomy.MOSFET))
	assert.False(t, r.Matches("IRF510", ""))
	assert.False(t, r.Matches("IRF510", taxonomy.Diode))
}

func TestMatchesRegistrationOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRFP\d{3}`))
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRF\d{3}`))

	// Both contributors are reachable through Matches.
	assert.True(t, r.Matches("IRFP460", taxonomy.MOSFET))
	assert.True(t, r.Matches("IRF510", taxonomy.MOSFET))
	assert.Equal(t, 2, r.Count(taxonomy.MOSFET))
}

func TestMatchesCaseInsensitive(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRF\d{3}`))

	assert.True(t, r.Matches("irf510", taxonomy.MOSFET))
	assert.True(t, r.Matches("Irf510", taxonomy.MOSFET))
	assert.True(t, r.Matches("IRF510", taxonomy.MOSFET))
}

// FirstPattern returns only the first-registered matcher. That is a
// documented limitation of the accessor, not of the registry: later
// contributors stay reachable through Matches.
func TestFirstPatternSeesOnlyFirstContributor(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRFP\d{3}`))
	require.NoError(t, r.Register(taxonomy.MOSFET, `SI\d{4}`))

	p, ok := r.FirstPattern(taxonomy.MOSFET)
	require.True(t, ok)
	assert.True(t, p.MatchString("IRFP460"))
	assert.False(t, p.MatchString("SI2302"))

	// The second contributor is invisible to FirstPattern but not to
	// classification.
	assert.True(t, r.Matches("SI2302", taxonomy.MOSFET))

	_, ok = r.FirstPattern(taxonomy.Diode)
	assert.False(t, ok)
}

func TestKinds(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRF\d{3}`))
	require.NoError(t, r.Register(taxonomy.Diode, `RL\d{3}`))

	assert.Equal(t, []taxonomy.Kind{taxonomy.Diode, taxonomy.MOSFET}, r.Kinds())
}

func TestPropertyMatchCaseInvariance(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(taxonomy.MOSFET, `IRF[A-Z]?\d{3,4}`))

	rapid.Check(t, func(rt *rapid.T) {
		part := rapid.StringMatching(`[A-Za-z]{2,4}[0-9]{2,4}`).Draw(rt, "part")
		got := r.Matches(part, taxonomy.MOSFET)
		require.Equal(t, got, r.Matches(strings.ToLower(part), taxonomy.MOSFET))
		require.Equal(t, got, r.Matches(strings.ToUpper(part), taxonomy.MOSFET))
	})
}
