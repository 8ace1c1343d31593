// Package clipboard reads and writes the system clipboard through the
// platform's native tooling. All operations are best-effort: callers that
// only mirror output to the clipboard should treat errors as non-fatal.
package clipboard

import "errors"

// ErrUnsupported is returned when no usable clipboard tool exists on this
// platform.
var ErrUnsupported = errors.New("clipboard is not supported on this platform")
