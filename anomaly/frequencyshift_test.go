package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsagen/timeseries"
)

func TestFrequencyShiftRatioOneIsIdentity(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	gen, err := NewFrequencyShift(1)
	require.NoError(t, err)

	out, err := gen.Generate(timeseries.New(values))
	require.NoError(t, err)
	require.Equal(t, values, out.Values)
}

func TestFrequencyShiftSubsamples(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		ratio    float64
		expected []float64
	}{
		{"half keeps every other", []float64{1, 2, 3, 4, 5, 6}, 0.5, []float64{1, 3, 5}},
		{"half odd length", []float64{1, 2, 3, 4, 5}, 0.5, []float64{1, 3, 5}},
		{"third keeps every third", []float64{1, 2, 3, 4, 5, 6, 7}, 1.0 / 3, []float64{1, 4, 7}},
		{"quarter", []float64{1, 2, 3, 4, 5, 6, 7, 8}, 0.25, []float64{1, 5}},
		{"empty", []float64{}, 0.5, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewFrequencyShift(tt.ratio)
			require.NoError(t, err)
			out, err := gen.Generate(timeseries.New(tt.values))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Values)
		})
	}
}

func TestFrequencyShiftRejectsOutOfRangeRatio(t *testing.T) {
	for _, ratio := range []float64{0, -0.5, 1.5, 2} {
		_, err := NewFrequencyShift(ratio)
		require.ErrorIs(t, err, ErrInvalidParameter, "ratio %g", ratio)
	}
}

func TestFrequencyShiftString(t *testing.T) {
	gen, err := NewFrequencyShift(0.5)
	require.NoError(t, err)
	assert.Equal(t, "FrequencyShift - {ratio: 0.5}", gen.String())
	assert.Equal(t, KindFrequencyShift, gen.Kind())
}
