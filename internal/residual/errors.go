package residual

import "errors"

// ErrInvalidArgument indicates a dimension mismatch or a degenerate
// zero-dimension configuration. It is raised at the point of detection
// and never recovered internally; no output buffer is modified when an
// operation fails with it.
var ErrInvalidArgument = errors.New("residual: invalid argument")
