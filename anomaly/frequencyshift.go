package anomaly

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// FrequencyShift subsamples the template by a stride derived from ratio:
// stride = floor(1/ratio), keeping every stride-th value starting at index 0.
// The output length is ceil(len/stride). Ratio 1 is the identity.
type FrequencyShift struct {
	Ratio float64
}

// NewFrequencyShift creates a frequency-shift generator. Ratio accepts only
// values > 0 and <= 1; upsampling (ratio > 1) is deliberately not supported.
func NewFrequencyShift(ratio float64) (*FrequencyShift, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"frequency shift ratio accepts only values > 0 and <= 1, got %g", ratio)
	}
	return &FrequencyShift{Ratio: ratio}, nil
}

// Kind returns KindFrequencyShift.
func (f *FrequencyShift) Kind() Kind { return KindFrequencyShift }

// Style returns StyleLine.
func (f *FrequencyShift) Style() Style { return StyleLine }

// Generate returns every stride-th value of the template, reindexed from 0.
func (f *FrequencyShift) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	stride := int(1 / f.Ratio)
	values := make([]float64, 0, (template.Len()+stride-1)/stride)
	for i := 0; i < template.Len(); i += stride {
		values = append(values, template.Values[i])
	}
	return timeseries.New(values), nil
}

func (f *FrequencyShift) String() string {
	return fmt.Sprintf("%s - {ratio: %g}", KindFrequencyShift, f.Ratio)
}
