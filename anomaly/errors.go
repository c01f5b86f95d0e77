package anomaly

import "github.com/pkg/errors"

// Validation failures surfaced by generator constructors and Generate.
// All checks run eagerly; a failed construction returns no generator and
// a failed generation returns no partial series.
var (
	// ErrInvalidParameter reports a parameter outside its allowed domain,
	// such as a negative sigma or a frequency-shift ratio outside (0, 1].
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput reports a structurally invalid template, such as an
	// empty series passed to a generator that needs its min and max.
	ErrInvalidInput = errors.New("invalid input series")
)
