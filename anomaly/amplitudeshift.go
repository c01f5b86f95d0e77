package anomaly

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// AmplitudeShift translates the whole template by a constant offset equal
// to a fraction of its value range (max - min).
type AmplitudeShift struct {
	Ratio float64
}

// NewAmplitudeShift creates an amplitude-shift generator.
func NewAmplitudeShift(ratio float64) *AmplitudeShift {
	return &AmplitudeShift{Ratio: ratio}
}

// Kind returns KindAmplitudeShift.
func (a *AmplitudeShift) Kind() Kind { return KindAmplitudeShift }

// Style returns StyleLine.
func (a *AmplitudeShift) Style() Style { return StyleLine }

// Generate returns template[i] + (max-min)*ratio for every position.
// The template must be non-empty, otherwise its range is undefined.
func (a *AmplitudeShift) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	if template.Len() == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "amplitude shift needs a non-empty template")
	}
	shift := template.Range() * a.Ratio
	values := make([]float64, template.Len())
	for i, v := range template.Values {
		values[i] = v + shift
	}
	return timeseries.New(values), nil
}

func (a *AmplitudeShift) String() string {
	return fmt.Sprintf("%s - {ratio: %g}", KindAmplitudeShift, a.Ratio)
}
