//go:build linux

package clipboard

import (
	"bytes"
	"os/exec"
	"strings"
)

type provider struct {
	read  []string
	write []string
}

// providers are tried in order until one succeeds; wayland tooling first,
// then the X11 fallbacks.
var providers = []provider{
	{read: []string{"wl-paste", "--no-newline"}, write: []string{"wl-copy"}},
	{read: []string{"xclip", "-selection", "clipboard", "-o"}, write: []string{"xclip", "-selection", "clipboard"}},
	{read: []string{"xsel", "--clipboard", "--output"}, write: []string{"xsel", "--clipboard", "--input"}},
}

// ReadText returns the current text content of the system clipboard.
func ReadText() (string, error) {
	for _, p := range providers {
		if _, err := exec.LookPath(p.read[0]); err != nil {
			continue
		}
		cmd := exec.Command(p.read[0], p.read[1:]...)
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			continue
		}
		return strings.TrimRight(out.String(), "\n"), nil
	}
	return "", ErrUnsupported
}

// WriteText replaces the system clipboard with the given text.
func WriteText(text string) error {
	for _, p := range providers {
		if _, err := exec.LookPath(p.write[0]); err != nil {
			continue
		}
		cmd := exec.Command(p.write[0], p.write[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			continue
		}
		return nil
	}
	return ErrUnsupported
}
