package feature

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a feature is constructed from
// options or directions that cannot describe any geometry. It happens before
// any grid interaction, so the caller can retry with other parameters.
var ErrInvalidConfiguration = errors.New("invalid feature configuration")

var (
	// ErrNoDirection: the feature was asked to grow along neither axis
	ErrNoDirection = fmt.Errorf("%w: a feature must have either an x or a y direction", ErrInvalidConfiguration)
	// ErrInvalidRange: an option range is empty or starts below 1
	ErrInvalidRange = fmt.Errorf("%w: range must satisfy 1 <= min < max", ErrInvalidConfiguration)
)
