package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

// outputPath resolves name for writing. A bare file name is placed in dir;
// any path with a directory component is used as given. The parent directory
// is created. Paths with ".." segments or control characters are rejected.
func outputPath(dir, name string) (string, error) {
	if err := cerrors.ValidatePath(name); err != nil {
		return "", err
	}
	path := name
	if dir != "" && filepath.Base(name) == name {
		path = filepath.Join(dir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return path, nil
}

// writeOutput writes the output of render to the resolved path, or to c.Out
// when name is empty. It returns the path written, if any.
func (c *CLI) writeOutput(dir, name string, render func(io.Writer) error) (string, error) {
	if name == "" {
		return "", render(c.Out)
	}
	path, err := outputPath(dir, name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
