package anomaly

import (
	"math/rand"
	"time"

	"github.com/sartorproj/tsagen/timeseries"
)

// Kind identifies an anomaly generator type.
type Kind string

const (
	KindNoisy          Kind = "Noisy"
	KindRangeShift     Kind = "RangeShift"
	KindAmplitudeShift Kind = "AmplitudeShift"
	KindPoint          Kind = "Point"
	KindFrequencyShift Kind = "FrequencyShift"
	KindCompound       Kind = "Compound"
)

// Style is a render hint for charting front ends.
type Style int

const (
	// StyleLine renders the anomaly as a continuous segment following the template.
	StyleLine Style = iota
	// StyleMarkers renders anomalous values as discrete points over the
	// template's continuous line. Used by Point, whose output is a set of
	// scatter annotations rather than a continuation of the series.
	StyleMarkers
)

// Generator produces an anomalous series from a template series.
// Implementations never mutate the template and hold no state besides
// their parameters and an optional random source.
type Generator interface {
	// Kind returns the generator's type identifier.
	Kind() Kind
	// Generate derives an anomalous series from template.
	Generate(template *timeseries.Series) (*timeseries.Series, error)
	// Style returns the render hint for the generated series.
	Style() Style
	// String returns the stable "<Kind> - <parameters>" representation.
	String() string
}

// Process-wide source used when no explicit source or seed is supplied.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Option configures the random source of a stochastic generator.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used for noise sampling. Generators
// sharing one source draw from a single stream, which keeps a multi-stage
// pipeline reproducible from a single seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed sets a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

func newOptions(opts []Option) options {
	o := options{rng: defaultRand}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
