package anomaly

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// Noisy adds one independent Gaussian noise draw to every value of the
// template, leaving the length unchanged.
type Noisy struct {
	Mu    float64
	Sigma float64
	rng   *rand.Rand
}

// NewNoisy creates a noise generator. Sigma must be non-negative.
func NewNoisy(mu, sigma float64, opts ...Option) (*Noisy, error) {
	if sigma < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sigma must be >= 0, got %g", sigma)
	}
	o := newOptions(opts)
	return &Noisy{Mu: mu, Sigma: sigma, rng: o.rng}, nil
}

// Kind returns KindNoisy.
func (n *Noisy) Kind() Kind { return KindNoisy }

// Style returns StyleLine.
func (n *Noisy) Style() Style { return StyleLine }

// Generate returns template[i] + Normal(mu, sigma), one draw per position.
func (n *Noisy) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	values := make([]float64, template.Len())
	for i, v := range template.Values {
		values[i] = v + n.rng.NormFloat64()*n.Sigma + n.Mu
	}
	return timeseries.New(values), nil
}

func (n *Noisy) String() string {
	return fmt.Sprintf("%s - {mu: %g, sigma: %g}", KindNoisy, n.Mu, n.Sigma)
}
