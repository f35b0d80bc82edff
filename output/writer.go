// Package output delivers generated passwords to a console or a file.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// PreviewLimit is the maximum number of runes printed to the console before
// the output is truncated with a notice.
const PreviewLimit = 2000

// Writer sinks passwords to an io.Writer for console output and an afero
// filesystem for file output.
type Writer struct {
	fs  afero.Fs
	out io.Writer
}

// NewWriter builds a Writer over fs and out.
func NewWriter(fs afero.Fs, out io.Writer) *Writer {
	return &Writer{fs: fs, out: out}
}

// Print writes the password to the console. Passwords longer than
// PreviewLimit runes are truncated with a notice and a tip to save to file.
func (w *Writer) Print(pass string) error {
	runes := []rune(pass)
	if len(runes) <= PreviewLimit {
		_, err := fmt.Fprintln(w.out, pass)
		return err
	}

	if _, err := fmt.Fprintln(w.out, string(runes[:PreviewLimit])); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.out, "\n... (printed first %d chars of %d)\n", PreviewLimit, len(runes)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w.out, "Tip: use --out <file> to save the full password.")
	return err
}

// Save writes the password to path, creating parent directories as needed.
func (w *Writer) Save(path, pass string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(w.fs, path, []byte(pass), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
