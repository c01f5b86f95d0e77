package anomaly

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// Point emits pairs of outliers alternating strictly between an upper and a
// lower bound derived from the template's range. Given a template with range
// spread and threshold fraction ratio, every even output lies around
// max+spread*ratio and every odd output around min-spread*ratio, each
// perturbed by its own Normal(mu, sigma) draw. The output has 2*Count values
// and is meant to be rendered as discrete markers, not as a line.
type Point struct {
	Ratio float64
	Mu    float64
	Sigma float64
	Count int
	rng   *rand.Rand
}

// NewPoint creates a point-outlier generator. Count and sigma must be
// non-negative.
func NewPoint(ratio, mu, sigma float64, count int, opts ...Option) (*Point, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "count must be >= 0, got %d", count)
	}
	if sigma < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sigma must be >= 0, got %g", sigma)
	}
	o := newOptions(opts)
	return &Point{Ratio: ratio, Mu: mu, Sigma: sigma, Count: count, rng: o.rng}, nil
}

// Kind returns KindPoint.
func (p *Point) Kind() Kind { return KindPoint }

// Style returns StyleMarkers.
func (p *Point) Style() Style { return StyleMarkers }

// Generate returns Count (upper, lower) pairs appended in order. The
// template must be non-empty, otherwise the bounds are undefined. Count 0
// yields an empty series.
func (p *Point) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	if template.Len() == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "point anomaly needs a non-empty template")
	}
	mid := template.Range() * p.Ratio
	upper := template.Max() + mid
	lower := template.Min() - mid

	values := make([]float64, 0, 2*p.Count)
	for i := 0; i < p.Count; i++ {
		// Two independent draws per pair, upper first.
		values = append(values, upper+p.rng.NormFloat64()*p.Sigma+p.Mu)
		values = append(values, lower+p.rng.NormFloat64()*p.Sigma+p.Mu)
	}
	return timeseries.New(values), nil
}

func (p *Point) String() string {
	return fmt.Sprintf("%s - {ratio: %g, mu: %g, sigma: %g, count: %d}",
		KindPoint, p.Ratio, p.Mu, p.Sigma, p.Count)
}
