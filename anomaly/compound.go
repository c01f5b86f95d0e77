package anomaly

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/tsagen/timeseries"
)

// Compound chains generators into a pipeline. Each stage consumes the
// previous stage's output as its template; only the first stage sees the
// original template. An empty chain is the identity pipeline.
type Compound struct {
	Stages []Generator
}

// NewCompound creates a compound generator applying stages in order.
func NewCompound(stages ...Generator) *Compound {
	return &Compound{Stages: stages}
}

// Kind returns KindCompound.
func (c *Compound) Kind() Kind { return KindCompound }

// Style returns StyleLine.
func (c *Compound) Style() Style { return StyleLine }

// Generate runs the stages strictly sequentially and returns the final
// stage's output. A failing stage aborts the pipeline with its error.
func (c *Compound) Generate(template *timeseries.Series) (*timeseries.Series, error) {
	current := template
	for i, stage := range c.Stages {
		next, err := stage.Generate(current)
		if err != nil {
			return nil, errors.Wrapf(err, "compound stage %d (%s)", i, stage.Kind())
		}
		current = next
	}
	if current == template {
		// Identity pipeline: never alias the caller's template.
		return template.Copy(), nil
	}
	return current, nil
}

// String lists the constituent kinds in pipeline order, e.g.
// "Compound - [FrequencyShift, AmplitudeShift, RangeShift]".
func (c *Compound) String() string {
	names := make([]string, len(c.Stages))
	for i, stage := range c.Stages {
		names[i] = string(stage.Kind())
	}
	return fmt.Sprintf("%s - [%s]", KindCompound, strings.Join(names, ", "))
}
