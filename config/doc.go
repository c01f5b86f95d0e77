// Package config loads declarative anomaly pipeline definitions.
//
// A pipeline file lists generator stages in order, with optional seeding and
// an optional insertion position:
//
//	name: spikes
//	seed: 42
//	stages:
//	  - type: frequencyshift
//	    params: {ratio: 0.5}
//	  - type: amplitudeshift
//	    params: {ratio: 0.333}
//	  - type: point
//	    params: {ratio: 0.5, sigma: 2, count: 10}
//	insert:
//	  index: 120
//
// Both YAML and JSON files are accepted. Load parses the file, and Build
// turns it into an anomaly.Generator — a single stage becomes that stage's
// generator, multiple stages become a Compound chain:
//
//	pipe, err := config.Load("spikes.yaml")
//	if err != nil {
//	    return err
//	}
//	gen, err := pipe.Build()
//
// Stage parameters are validated when the pipeline is built, so a malformed
// file fails before any data is touched.
package config
