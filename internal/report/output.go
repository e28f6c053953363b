package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes data to path, creating parent directories when needed.
// An existing file is overwritten.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "unable to create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	return nil
}

// Confirm prints the one-line confirmation for a written file.
func Confirm(w io.Writer, path string) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, "Wrote", path)
}
