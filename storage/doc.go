// Package storage defines persistence interfaces for notes and attachments.
//
// The interfaces follow the dependency inversion principle: the ingestion
// pipeline depends on RecordStore and Tx, not on a concrete database. The
// storage/sqlite sub-package provides the production implementation.
//
// The write path is transactional by contract: a note and all of its
// attachment rows are created inside one WithTransaction call and are never
// visible partially.
package storage
