package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsagen/timeseries"
)

func TestPointAlternatesUpperAndLower(t *testing.T) {
	template := timeseries.New([]float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	// sigma 0 removes randomness: every even output is exactly the upper
	// bound, every odd output exactly the lower bound.
	gen, err := NewPoint(0.5, 0, 0, 4)
	require.NoError(t, err)

	out, err := gen.Generate(template)
	require.NoError(t, err)
	require.Equal(t, 8, out.Len())

	mid := template.Range() * 0.5 // 5
	upper := template.Max() + mid // 25
	lower := template.Min() - mid // 5
	for i, v := range out.Values {
		if i%2 == 0 {
			assert.InDelta(t, upper, v, 1e-12, "even index %d", i)
		} else {
			assert.InDelta(t, lower, v, 1e-12, "odd index %d", i)
		}
	}
}

func TestPointOutputLengthIsTwiceCount(t *testing.T) {
	template := timeseries.New([]float64{1, 2, 3})
	for _, count := range []int{0, 1, 5, 100} {
		gen, err := NewPoint(1.0/3, 0, 1, count, WithSeed(1))
		require.NoError(t, err)
		out, err := gen.Generate(template)
		require.NoError(t, err)
		assert.Equal(t, 2*count, out.Len(), "count %d", count)
	}
}

func TestPointNoiseStaysAroundBounds(t *testing.T) {
	template := timeseries.New([]float64{0, 10})
	gen, err := NewPoint(1, 0, 0.5, 50, WithSeed(3))
	require.NoError(t, err)

	out, err := gen.Generate(template)
	require.NoError(t, err)
	// upper bound 20, lower bound -10; with sigma 0.5 every draw should
	// keep even values well above odd ones.
	for i := 0; i+1 < out.Len(); i += 2 {
		assert.Greater(t, out.Values[i], out.Values[i+1])
	}
}

func TestPointRejectsInvalidParameters(t *testing.T) {
	_, err := NewPoint(0.5, 0, 1, -1)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewPoint(0.5, 0, -1, 1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPointRejectsEmptyTemplate(t *testing.T) {
	gen, err := NewPoint(0.5, 0, 1, 1)
	require.NoError(t, err)
	_, err = gen.Generate(timeseries.New(nil))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPointStyleAndString(t *testing.T) {
	gen, err := NewPoint(0.5, 0, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, StyleMarkers, gen.Style())
	assert.Equal(t, "Point - {ratio: 0.5, mu: 0, sigma: 10, count: 100}", gen.String())
}
