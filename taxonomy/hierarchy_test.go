package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHierarchy(t *testing.T) {
	h, err := NewHierarchy(map[Kind]Kind{
		"mosfet:irf":           MOSFET,
		"microcontroller:stm8": Microcontroller,
	})
	require.NoError(t, err)

	p, ok := h.Parent("mosfet:irf")
	require.True(t, ok)
	assert.Equal(t, MOSFET, p)

	_, ok = h.Parent(MOSFET)
	assert.False(t, ok)
	assert.True(t, h.IsGeneric(MOSFET))
	assert.False(t, h.IsGeneric("mosfet:irf"))
}

func TestNewHierarchyRejectsDefects(t *testing.T) {
	_, err := NewHierarchy(map[Kind]Kind{"": MOSFET})
	assert.Error(t, err)

	_, err = NewHierarchy(map[Kind]Kind{"mosfet:irf": ""})
	assert.Error(t, err)

	_, err = NewHierarchy(map[Kind]Kind{MOSFET: MOSFET})
	assert.Error(t, err)

	_, err = NewHierarchy(map[Kind]Kind{"a": "b", "b": "c", "c": "a"})
	assert.Error(t, err)
}

func TestGeneralizes(t *testing.T) {
	h, err := NewHierarchy(map[Kind]Kind{
		"mosfet:irf":      MOSFET,
		"mosfet:irf:auto": "mosfet:irf",
	})
	require.NoError(t, err)

	assert.True(t, h.Generalizes(MOSFET, "mosfet:irf"))
	assert.True(t, h.Generalizes(MOSFET, "mosfet:irf:auto"))
	assert.True(t, h.Generalizes("mosfet:irf", "mosfet:irf:auto"))
	assert.False(t, h.Generalizes("mosfet:irf", MOSFET))
	assert.False(t, h.Generalizes(MOSFET, MOSFET))
	assert.False(t, h.Generalizes(MOSFET, Diode))
	assert.False(t, h.Generalizes("", "mosfet:irf"))
}

func TestChildren(t *testing.T) {
	h, err := NewHierarchy(map[Kind]Kind{
		"mosfet:irf":    MOSFET,
		"mosfet:vishay": MOSFET,
		"diode:rl":      Diode,
	})
	require.NoError(t, err)

	assert.Equal(t, []Kind{"mosfet:irf", "mosfet:vishay"}, h.Children(MOSFET))
	assert.Empty(t, h.Children(Transceiver))
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, Kind("").IsZero())
	assert.False(t, MOSFET.IsZero())
	assert.Equal(t, Kind("mosfet:irf"), MOSFET.Specialize("irf"))
	assert.Equal(t, "irf", Kind("mosfet:irf").Qualifier())
	assert.Equal(t, "", MOSFET.Qualifier())
}
