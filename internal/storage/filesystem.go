// Package storage implements the blob store backends. A stored object is
// addressed by a locator URL: file:// for the local backend, gs:// for
// Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Filesystem struct {
	root string
}

func NewFilesystem(root string) *Filesystem {
	return &Filesystem{root: root}
}

func (f *Filesystem) Put(_ context.Context, ownerID, name, _ string, data []byte) (string, error) {
	rel := filepath.Join(ownerID, uuid.NewString()+"-"+filepath.Base(name))
	path := filepath.Join(f.root, rel)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve blob path: %w", err)
	}

	return "file://" + abs, nil
}

func (f *Filesystem) Open(_ context.Context, locator string) (io.ReadCloser, error) {
	path, ok := strings.CutPrefix(locator, "file://")
	if !ok {
		return nil, fmt.Errorf("unexpected locator %q", locator)
	}

	root, err := filepath.Abs(f.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}

	// Locators come from the record store, but never follow one outside the
	// storage root.
	if !strings.HasPrefix(filepath.Clean(path), root+string(filepath.Separator)) {
		return nil, fmt.Errorf("locator %q is outside the storage root", locator)
	}

	body, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}

	return body, nil
}
