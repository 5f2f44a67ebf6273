package sqlite

import "path/filepath"

// NewTestStore creates a store backed by a database file inside dir,
// typically t.TempDir(). Caller must close the store when done.
func NewTestStore(dir string) (*Store, error) {
	return Open(filepath.Join(dir, "jot-test.db"))
}
