package plate

import "errors"

// ErrInvalidArgument indicates a well, row, column or label outside the
// fixed 16x24 plate.
var ErrInvalidArgument = errors.New("invalid argument")
