package badger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/jot/blobstore"
)

// Store is a local, content-addressed blob store over BadgerDB.
// Identical content maps to the same reference, so duplicate uploads are
// free. Deleting one of several logical duplicates removes the shared
// object; callers that need refcounting should layer it above.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ blobstore.Store = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a blob store at the specified path.
// Creates the directory if it doesn't exist. With inMemory set, path is
// ignored and nothing touches disk.
func OpenStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "badger-blobstore"),
	}, nil
}

// Upload stores the blob under its content digest and returns a
// blob://<digest> reference.
func (s *Store) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", blobstore.ErrEmptyBlob
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	digest := contentDigest(data)
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(makeBlobKey(digest), data); err != nil {
			return err
		}
		return txn.Set(makeMetaKey(digest), []byte(contentType))
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("blob stored", "digest", digest, "size", len(data))
	return refFromDigest(digest), nil
}

// Delete removes the object and its metadata.
func (s *Store) Delete(ctx context.Context, ref string) error {
	digest, err := digestFromRef(ref)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(makeBlobKey(digest)); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", blobstore.ErrNotFound, ref)
			}
			return err
		}
		if err := txn.Delete(makeBlobKey(digest)); err != nil {
			return err
		}
		return txn.Delete(makeMetaKey(digest))
	})
}

// Get returns the blob content and its content type.
// Not part of the blobstore.Store capability; used by the CLI to read
// back locally stored inputs.
func (s *Store) Get(ctx context.Context, ref string) ([]byte, string, error) {
	digest, err := digestFromRef(ref)
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	var data []byte
	var contentType string
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeBlobKey(digest))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", blobstore.ErrNotFound, ref)
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		meta, err := txn.Get(makeMetaKey(digest))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil // tolerate missing metadata
			}
			return err
		}
		value, err := meta.ValueCopy(nil)
		if err != nil {
			return err
		}
		contentType = string(value)
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
