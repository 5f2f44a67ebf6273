package storage

import (
	"context"

	"github.com/poiesic/jot/core"
)

// Tx is the write surface available inside a transaction.
// Inserts populate the model's ID and timestamps on success.
type Tx interface {
	// InsertNote inserts a note row and populates its generated id.
	InsertNote(ctx context.Context, note *core.Note) error

	// InsertAttachment inserts one attachment row.
	InsertAttachment(ctx context.Context, attachment *core.Attachment) error
}

// RecordStore provides persistence for notes and their attachments.
// Implementations must be thread-safe and support concurrent access.
type RecordStore interface {
	// WithTransaction executes fn within a transaction.
	// If fn returns an error, every write made through tx is rolled back.
	// If fn returns nil, the transaction is committed.
	//
	// The transaction must stay free of external calls: the pipeline keeps
	// network work strictly outside this scope.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// GetNote retrieves a note by id with its attachments preloaded in
	// display order. Returns ErrNotFound if the note doesn't exist or was
	// soft-deleted.
	GetNote(ctx context.Context, id uint) (*core.Note, error)

	// ListNotes retrieves up to limit notes, most recent first. An empty
	// category matches all categories. Soft-deleted notes are excluded.
	ListNotes(ctx context.Context, category core.Category, limit int) ([]*core.Note, error)

	// SoftDeleteNote marks a note and its attachments as deleted without
	// losing history. Returns ErrNotFound if the note doesn't exist.
	SoftDeleteNote(ctx context.Context, id uint) error

	// Close closes the storage backend and releases resources.
	Close() error
}
