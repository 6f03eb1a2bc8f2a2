package readiness

import "errors"

// ErrNotReady is returned by checks while the resource is still progressing.
var ErrNotReady = errors.New("resource not ready")
