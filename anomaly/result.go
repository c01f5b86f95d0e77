package anomaly

import (
	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// Result pairs a template with the anomaly generated from it. It is
// produced exactly once by Apply and read-only afterwards; it holds no
// reference to any host series it may later be spliced into.
type Result struct {
	// Template is a copy of the series the anomaly was derived from.
	Template *timeseries.Series
	// Anomaly is the generated series.
	Anomaly *timeseries.Series

	style Style
	desc  string
}

// Apply runs generator against template once and captures the outcome.
// On failure no Result is observable.
func Apply(g Generator, template *timeseries.Series) (*Result, error) {
	if template == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil template")
	}
	out, err := g.Generate(template)
	if err != nil {
		return nil, err
	}
	return &Result{
		Template: template.Copy(),
		Anomaly:  out,
		style:    g.Style(),
		desc:     g.String(),
	}, nil
}

// Style returns the render hint of the generator that produced the anomaly:
// StyleMarkers for point outliers, StyleLine otherwise. Charting components
// receive Template, Anomaly, and this hint; rendering itself lives outside
// this package.
func (r *Result) Style() Style { return r.style }

// String returns the producing generator's display representation.
func (r *Result) String() string { return r.desc }

// Insert returns a new series with the anomaly spliced into host before
// index. The host is never mutated.
func (r *Result) Insert(host *timeseries.Series, index int) (*timeseries.Series, error) {
	return timeseries.Insert(host, r.Anomaly, index)
}

// Append returns a new series with the anomaly concatenated after host.
func (r *Result) Append(host *timeseries.Series) *timeseries.Series {
	return timeseries.Concat(host, r.Anomaly)
}
