package anomaly

import (
	"fmt"

	"github.com/sartorproj/tsagen/timeseries"
)

// RangeShift scales every value of the template by a constant ratio.
// A negative ratio inverts the series.
type RangeShift struct {
	Ratio float64
}

// NewRangeShift creates a range-shift generator. Any real ratio is valid.
func NewRangeShift(ratio float64) *RangeShift {
	return &RangeShift{Ratio: ratio}
}

// Kind returns KindRangeShift.
func (r *RangeShift) Kind() Kind { return KindRangeShift }

// Style returns StyleLine.
func (r *RangeShift) Style() Style { return StyleLine }

// Generate returns template[i] * ratio for every position.
func (r *RangeShift) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	values := make([]float64, template.Len())
	for i, v := range template.Values {
		values[i] = v * r.Ratio
	}
	return timeseries.New(values), nil
}

func (r *RangeShift) String() string {
	return fmt.Sprintf("%s - {ratio: %g}", KindRangeShift, r.Ratio)
}
