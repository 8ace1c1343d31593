//go:build !darwin && !linux

package clipboard

// ReadText returns the current text content of the system clipboard.
func ReadText() (string, error) {
	return "", ErrUnsupported
}

// WriteText replaces the system clipboard with the given text.
func WriteText(text string) error {
	return ErrUnsupported
}
