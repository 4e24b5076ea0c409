package storage

import (
	"context"
	"io"
)

// Storage abstracts the file store holding avatar originals and
// thumbnails.
type Storage interface {
	// Save stores a file at the given path, creating directories as
	// needed.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Open retrieves a file for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)
}
