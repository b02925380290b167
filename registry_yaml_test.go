// registry_yaml_test.go
package dim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `
units:
  - symbol: furlong
    dim: {l: 1}
    scale: 201.168
  - symbol: R
    dim: {th: 1}
    scale: 0.5555555555555556
aliases:
  - {alias: fur, of: furlong}
prefixes:
  - {symbol: k, factor: 1e3}
`

func Test_RegistryYAML_Parse(t *testing.T) {
	r, err := ParseRegistry([]byte(sampleRegistry), "sample")
	require.NoError(t, err)

	u, ok := r.FindExact("furlong")
	require.True(t, ok)
	assert.Equal(t, 201.168, u.Scale)
	assert.True(t, u.Dim.Eql(BaseDim(AxisLength)))

	u, ok = r.FindExact("fur")
	require.True(t, ok)
	assert.Equal(t, "furlong", u.Symbol)

	u, ok = r.Find("kfurlong")
	require.True(t, ok)
	assert.InDelta(t, 201168, u.Scale, 1e-9)
}

func Test_RegistryYAML_Rejects_Unknown_Axis(t *testing.T) {
	_, err := ParseRegistry([]byte(`
units:
  - symbol: x
    dim: {q: 1}
    scale: 1
`), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown axis")
}

func Test_RegistryYAML_Rejects_Dangling_Alias(t *testing.T) {
	_, err := ParseRegistry([]byte(`
aliases:
  - {alias: a, of: nothing}
`), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit")
}

func Test_RegistryYAML_Rejects_NonPositive_Scale(t *testing.T) {
	_, err := ParseRegistry([]byte(`
units:
  - symbol: x
    dim: {l: 1}
    scale: 0
`), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale must be positive")
}

func Test_RegistryYAML_Engine_Integration(t *testing.T) {
	r, err := ParseRegistry([]byte(sampleRegistry), "sample")
	require.NoError(t, err)

	eng := New(WithRegistry(r))
	out, err := eng.Eval("2 fur as m")
	require.NoError(t, err)
	assert.Equal(t, "402.336 m", out)
}
