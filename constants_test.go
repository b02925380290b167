// constants_test.go
package dim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Constants_Define_Builds_Synthetic_Unit(t *testing.T) {
	tab := NewConstantsTable()
	tab.Define("d", Quantity{Value: 86400, Dim: BaseDim(AxisTime), Unit: "h"})

	u, ok := tab.Get("d")
	assert.True(t, ok)
	assert.Equal(t, "d", u.Symbol)
	assert.Equal(t, 86400.0, u.Scale)
	assert.Equal(t, 0.0, u.Offset)
	assert.True(t, u.Dim.Eql(BaseDim(AxisTime)))
}

func Test_Constants_Replace_Keeps_Position(t *testing.T) {
	tab := NewConstantsTable()
	tab.Define("a", Quantity{Value: 1, Dim: BaseDim(AxisLength)})
	tab.Define("b", Quantity{Value: 2, Dim: BaseDim(AxisLength)})
	tab.Define("a", Quantity{Value: 3, Dim: BaseDim(AxisMass)})

	assert.Equal(t, []string{"a", "b"}, tab.Names())
	u, _ := tab.Get("a")
	assert.Equal(t, 3.0, u.Scale)
	assert.True(t, u.Dim.Eql(BaseDim(AxisMass)))
}

func Test_Constants_Clear(t *testing.T) {
	tab := NewConstantsTable()
	tab.Define("a", Quantity{Value: 1, Dim: BaseDim(AxisLength)})
	tab.Define("b", Quantity{Value: 2, Dim: BaseDim(AxisLength)})

	assert.True(t, tab.Clear("a"))
	assert.False(t, tab.Clear("a"))
	assert.Equal(t, []string{"b"}, tab.Names())

	_, ok := tab.Get("a")
	assert.False(t, ok)
}

func Test_Constants_ClearAll(t *testing.T) {
	tab := NewConstantsTable()
	tab.Define("a", Quantity{Value: 1, Dim: BaseDim(AxisLength)})
	tab.Define("b", Quantity{Value: 2, Dim: BaseDim(AxisLength)})

	tab.ClearAll()
	assert.Equal(t, 0, tab.Len())
	assert.Empty(t, tab.Names())
}
