package diagram

import "errors"

// ErrContainerNotFound indicates the host page has no element with the
// requested container id, or the container holds no generated plate.
var ErrContainerNotFound = errors.New("container not found")
