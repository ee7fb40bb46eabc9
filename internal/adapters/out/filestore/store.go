// Package filestore keeps label documents on the local filesystem.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"parcellabel/internal/pkg/errs"
)

// Store writes documents under Dir and serves them from BaseURL.
type Store struct {
	dir     string
	baseURL string
}

// New creates dir if needed.
func New(dir, baseURL string) (*Store, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("label dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create label dir: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Write replaces name atomically: data goes to a temp file in the same
// directory which is then renamed over the target.
func (s *Store) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errs.NewValueIsInvalidErrorWithCause("file name", fmt.Errorf("%q is not a plain file name", name))
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	if err = os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}

	return s.URL(name), nil
}

// URL is where name is served from.
func (s *Store) URL(name string) string {
	return s.baseURL + "/" + name
}

// Dir is the directory documents are written to.
func (s *Store) Dir() string {
	return s.dir
}
