package clf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatList(t *testing.T) {
	values, err := parseFloatList("Array", " 0.5\n\t1 \r\n -2e-3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, -0.002}, values)

	values, err = parseFloatList("Array", "")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseDimensions(t *testing.T) {
	dim, err := parseDimensions("dim", "2 2 2 3")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 3}, dim)

	for name, raw := range map[string]string{
		"empty":    "",
		"zero":     "2 0",
		"negative": "-1 3",
		"float":    "2.5 3",
		"garbage":  "a b",
	} {
		_, err := parseDimensions("dim", raw)
		assert.Error(t, err, name)
	}
}

func TestParseThreeFloats(t *testing.T) {
	got, err := parseThreeFloats("Slope", "1 2 3")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, got)

	_, err = parseThreeFloats("Slope", "1 2")
	assert.Error(t, err)

	_, err = parseThreeFloats("Slope", "1 2 3 4")
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	assert.NoError(t, parseVersion("3.0"))
	assert.NoError(t, parseVersion("2.0"))
	assert.NoError(t, parseVersion(" 1.0 "))

	assert.Error(t, parseVersion("3.01"))
	assert.Error(t, parseVersion("0"))
	assert.Error(t, parseVersion("nope"))
}
