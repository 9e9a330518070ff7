package linegen

import "errors"

// ErrInvalidRect indicates a bounding rectangle with a non-positive or
// non-finite width or height.
var ErrInvalidRect = errors.New("linegen: invalid bounding rectangle")

// ErrInvalidUnit indicates a gridUnit or linesPerUnit that is not a positive
// finite number.
var ErrInvalidUnit = errors.New("linegen: invalid grid unit")

// ErrBoundsExceeded is the panic value when a line cursor is advanced past
// its last line. It signals a bug in this package, never bad input.
var ErrBoundsExceeded = errors.New("linegen: bounds exceeded")
