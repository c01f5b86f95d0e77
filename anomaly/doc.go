// Package anomaly implements synthetic anomaly generators for time series.
//
// Each generator is a pure transformation from a template series and a set
// of typed parameters to an anomalous series. Six kinds are provided:
//
//   - Noisy: adds Gaussian noise to every value
//   - RangeShift: scales every value by a ratio
//   - AmplitudeShift: translates the series by a fraction of its range
//   - Point: emits outlier pairs alternating above and below the range
//   - FrequencyShift: subsamples the series by a stride derived from a ratio
//   - Compound: chains generators, each consuming the previous output
//
// # Quick Start
//
// Generate a noisy variant of a template and splice it into a host series:
//
//	template := timeseries.New(values)
//	gen, err := anomaly.NewNoisy(0, 5, anomaly.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	res, err := anomaly.Apply(gen, template)
//	if err != nil {
//	    return err
//	}
//	augmented, err := res.Insert(host, 120)
//
// # Pipelines
//
// Compound applies an ordered chain of generators:
//
//	freq, _ := anomaly.NewFrequencyShift(1.0 / 3)
//	gen := anomaly.NewCompound(
//	    freq,
//	    anomaly.NewAmplitudeShift(1.0/3),
//	    anomaly.NewRangeShift(0.5),
//	)
//	res, err := anomaly.Apply(gen, template)
//
// # Validation
//
// Parameters are validated eagerly: constructors reject out-of-domain values
// (ErrInvalidParameter) and Generate rejects structurally invalid templates
// (ErrInvalidInput). A failure never leaves a partial result behind.
//
// # Randomness
//
// Stochastic generators (Noisy, Point) draw from a process-wide source
// unless WithSeed or WithRand is supplied, which makes generation
// deterministic for testing.
package anomaly
