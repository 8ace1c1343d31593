//go:build darwin

package clipboard

import (
	"bytes"
	"os/exec"
	"strings"
)

// ReadText returns the current text content of the system clipboard.
func ReadText() (string, error) {
	cmd := exec.Command("pbpaste")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimRight(out.String(), "\n"), nil
}

// WriteText replaces the system clipboard with the given text.
func WriteText(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
