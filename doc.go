// Package tsagen provides synthetic anomaly generation for time series data.
//
// Given a template series, tsagen produces a transformed ("anomalous")
// series according to one of several parametric transformations, and can
// splice the generated segment into a host series at a chosen position.
// It generates anomalies only; it does not detect them.
//
// # Features
//
//   - Noise injection with configurable Gaussian parameters
//   - Range (multiplicative) and amplitude (additive) shifts
//   - Point outliers alternating above and below the template's range
//   - Frequency shift by integer-stride subsampling
//   - Compound pipelines chaining any of the above in order
//   - Declarative pipeline definitions in YAML or JSON
//   - Deterministic generation through explicit seeding
//
// # Quick Start
//
// Apply a transformation and splice the result into a host series:
//
//	template := timeseries.New(values)
//	gen, _ := anomaly.NewNoisy(0, 5, anomaly.WithSeed(42))
//	res, _ := anomaly.Apply(gen, template)
//	augmented, _ := res.Insert(host, 120)
//
// Or run a declarative pipeline:
//
//	pipe, _ := config.Load("spikes.yaml")
//	gen, _ := pipe.Build()
//	res, _ := anomaly.Apply(gen, template)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - anomaly: the anomaly generators and the compound pipeline
//   - config: declarative pipeline definitions (YAML/JSON)
//   - timeseries: series data structures, splicing, and CSV utilities
//
// The tsagen command (cmd/tsagen) wraps the library for CSV-in/CSV-out use.
package tsagen
