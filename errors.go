package blacklitterman

import "errors"

// ErrDimensionMismatch is returned when two inputs disagree on a shared
// dimension. It is raised before any matrix algebra runs, so no partial
// computation happens on malformed input. The wrapped message names the
// disagreeing pair and the expected versus actual sizes.
var ErrDimensionMismatch = errors.New("dimension mismatch")
