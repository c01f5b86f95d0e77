package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tsagen/timeseries"
)

func TestAmplitudeShiftAddsConstantOffset(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		ratio  float64
	}{
		{"third of range", []float64{10, 15, 20, 12, 18}, 1.0 / 3},
		{"negative ratio", []float64{1, 2, 3}, -0.5},
		{"flat series has zero range", []float64{7, 7, 7}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := timeseries.New(tt.values)
			out, err := NewAmplitudeShift(tt.ratio).Generate(template)
			require.NoError(t, err)
			require.Equal(t, len(tt.values), out.Len())

			shift := template.Range() * tt.ratio
			for i, v := range tt.values {
				assert.InDelta(t, shift, out.Values[i]-v, 1e-12)
			}
		})
	}
}

func TestAmplitudeShiftRejectsEmptyTemplate(t *testing.T) {
	_, err := NewAmplitudeShift(0.5).Generate(timeseries.New(nil))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAmplitudeShiftString(t *testing.T) {
	gen := NewAmplitudeShift(0.25)
	assert.Equal(t, "AmplitudeShift - {ratio: 0.25}", gen.String())
	assert.Equal(t, KindAmplitudeShift, gen.Kind())
}
