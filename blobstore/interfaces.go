package blobstore

import "context"

// Store is the blob storage capability used by the ingestion pipeline.
// Implementations must be thread-safe: the pipeline uploads files from
// concurrent per-file tasks.
//
// The pipeline uses the store in degraded mode: an Upload failure is logged
// and the file continues through extraction without a reference.
type Store interface {
	// Upload stores a byte stream with its content type and returns an
	// addressable reference (scheme depends on the backend).
	Upload(ctx context.Context, data []byte, contentType string) (string, error)

	// Delete removes the object behind a reference previously returned by
	// Upload. Deleting an unknown reference returns ErrNotFound.
	Delete(ctx context.Context, ref string) error

	// Close releases resources held by the backend.
	Close() error
}
