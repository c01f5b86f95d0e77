package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/sartorproj/tsagen/anomaly"
)

var log = logrus.WithField("component", "config")

// Stage declares one generator with its raw, untyped parameters. Params are
// decoded into the typed per-kind parameter structs when the pipeline is
// built.
type Stage struct {
	Type   string                 `yaml:"type" json:"type"`
	Params map[string]interface{} `yaml:"params,omitempty" json:"params,omitempty"`
}

// InsertSpec declares where the generated anomaly should be spliced into a
// host series. A nil Index means append.
type InsertSpec struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`
}

// Pipeline is a declarative anomaly definition: an ordered list of stages,
// an optional seed for reproducible noise, and an optional insertion spec.
type Pipeline struct {
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Seed   *int64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	Stages []Stage     `yaml:"stages" json:"stages"`
	Insert *InsertSpec `yaml:"insert,omitempty" json:"insert,omitempty"`
}

// NoisyParams configures a Noisy stage.
type NoisyParams struct {
	Mu    float64 `mapstructure:"mu"`
	Sigma float64 `mapstructure:"sigma"`
}

// RangeShiftParams configures a RangeShift stage.
type RangeShiftParams struct {
	Ratio float64 `mapstructure:"ratio"`
}

// AmplitudeShiftParams configures an AmplitudeShift stage.
type AmplitudeShiftParams struct {
	Ratio float64 `mapstructure:"ratio"`
}

// PointParams configures a Point stage.
type PointParams struct {
	Ratio float64 `mapstructure:"ratio"`
	Mu    float64 `mapstructure:"mu"`
	Sigma float64 `mapstructure:"sigma"`
	Count int     `mapstructure:"count"`
}

// FrequencyShiftParams configures a FrequencyShift stage.
type FrequencyShiftParams struct {
	Ratio float64 `mapstructure:"ratio"`
}

// Load reads a pipeline definition from a YAML or JSON file, dispatching on
// the file extension (".json" is JSON, everything else is YAML).
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading pipeline file")
	}

	var p Pipeline
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := jsoniter.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, "parsing pipeline JSON")
		}
	} else {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, "parsing pipeline YAML")
		}
	}
	log.WithFields(logrus.Fields{"name": p.Name, "stages": len(p.Stages)}).Debug("pipeline loaded")
	return &p, nil
}

// Build constructs the generator the pipeline describes: the single stage's
// generator for a one-stage pipeline, a Compound chain otherwise. A seed in
// the pipeline file creates one shared random source for all stochastic
// stages; explicit opts take precedence over it.
func (p *Pipeline) Build(opts ...anomaly.Option) (anomaly.Generator, error) {
	if p.Seed != nil {
		shared := anomaly.WithRand(rand.New(rand.NewSource(*p.Seed)))
		opts = append([]anomaly.Option{shared}, opts...)
	}

	gens := make([]anomaly.Generator, 0, len(p.Stages))
	for i, stage := range p.Stages {
		g, err := buildStage(stage, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d (%s)", i, stage.Type)
		}
		gens = append(gens, g)
	}
	if len(gens) == 1 {
		return gens[0], nil
	}
	return anomaly.NewCompound(gens...), nil
}

func buildStage(stage Stage, opts []anomaly.Option) (anomaly.Generator, error) {
	switch strings.ToLower(stage.Type) {
	case "noisy":
		p := NoisyParams{Sigma: 1}
		if err := decodeParams(stage.Params, &p); err != nil {
			return nil, err
		}
		return anomaly.NewNoisy(p.Mu, p.Sigma, opts...)
	case "rangeshift":
		var p RangeShiftParams
		if err := decodeParams(stage.Params, &p); err != nil {
			return nil, err
		}
		return anomaly.NewRangeShift(p.Ratio), nil
	case "amplitudeshift":
		var p AmplitudeShiftParams
		if err := decodeParams(stage.Params, &p); err != nil {
			return nil, err
		}
		return anomaly.NewAmplitudeShift(p.Ratio), nil
	case "point":
		p := PointParams{Ratio: 1.0 / 3, Sigma: 1, Count: 1}
		if err := decodeParams(stage.Params, &p); err != nil {
			return nil, err
		}
		return anomaly.NewPoint(p.Ratio, p.Mu, p.Sigma, p.Count, opts...)
	case "frequencyshift":
		var p FrequencyShiftParams
		if err := decodeParams(stage.Params, &p); err != nil {
			return nil, err
		}
		return anomaly.NewFrequencyShift(p.Ratio)
	default:
		return nil, errors.Wrapf(anomaly.ErrInvalidParameter, "unknown stage type %q", stage.Type)
	}
}

// decodeParams fills the typed parameter struct from the raw stage params,
// rejecting keys the stage does not understand.
func decodeParams(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return errors.Wrap(dec.Decode(raw), "decoding stage parameters")
}
