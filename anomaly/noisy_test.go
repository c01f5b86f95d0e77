package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsagen/timeseries"
)

func TestNoisyRejectsNegativeSigma(t *testing.T) {
	_, err := NewNoisy(0, -1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNoisyZeroSigmaShiftsByMu(t *testing.T) {
	template := timeseries.New([]float64{1, 2, 3, 4, 5})
	gen, err := NewNoisy(10, 0)
	require.NoError(t, err)

	out, err := gen.Generate(template)
	require.NoError(t, err)
	require.Equal(t, template.Len(), out.Len())
	for i, v := range template.Values {
		assert.InDelta(t, v+10, out.Values[i], 1e-12)
	}
}

func TestNoisySeededDeterminism(t *testing.T) {
	template := timeseries.New([]float64{10, 20, 30, 40, 50, 60})

	gen1, err := NewNoisy(0, 5, WithSeed(42))
	require.NoError(t, err)
	gen2, err := NewNoisy(0, 5, WithSeed(42))
	require.NoError(t, err)

	out1, err := gen1.Generate(template)
	require.NoError(t, err)
	out2, err := gen2.Generate(template)
	require.NoError(t, err)

	require.Equal(t, out1.Values, out2.Values)
}

func TestNoisyDoesNotMutateTemplate(t *testing.T) {
	values := []float64{1, 2, 3}
	template := timeseries.New(values)
	gen, err := NewNoisy(0, 3, WithSeed(7))
	require.NoError(t, err)

	_, err = gen.Generate(template)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, template.Values)
}

func TestNoisyString(t *testing.T) {
	gen, err := NewNoisy(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "Noisy - {mu: 0, sigma: 5}", gen.String())
	assert.Equal(t, KindNoisy, gen.Kind())
	assert.Equal(t, StyleLine, gen.Style())
}
