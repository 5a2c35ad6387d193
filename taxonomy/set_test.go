package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBuildAndQuery(t *testing.T) {
	s := NewSet(MOSFET).Add(Diode)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(MOSFET))
	assert.True(t, s.Has(Diode))
	assert.False(t, s.Has(OpAmp))
	assert.Equal(t, []Kind{Diode, MOSFET}, s.Kinds())
}

func TestSetFreezePreventsMutation(t *testing.T) {
	s := NewSet(MOSFET).Freeze()
	require.True(t, s.Frozen())

	assert.PanicsWithValue(t, ErrFrozenSet, func() {
		s.Add(Diode)
	})

	// The failed mutation left the set untouched.
	assert.Equal(t, 1, s.Len())
}

func TestSetFreezeIdempotent(t *testing.T) {
	s := NewSet(MOSFET).Freeze().Freeze()
	assert.True(t, s.Frozen())
}

func TestSetKindsIsACopy(t *testing.T) {
	s := NewSet(MOSFET, Diode).Freeze()
	kinds := s.Kinds()
	kinds[0] = OpAmp
	assert.True(t, s.Has(Diode))
	assert.False(t, s.Has(OpAmp))
}
