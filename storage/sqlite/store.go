// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package sqlite implements storage.RecordStore on SQLite via gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/jot/core"
	"github.com/poiesic/jot/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store implements storage.RecordStore backed by a SQLite database file.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ storage.RecordStore = (*Store)(nil)

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	if err := db.AutoMigrate(&core.Note{}, &core.Attachment{}); err != nil {
		return nil, fmt.Errorf("migrate record store: %w", err)
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "sqlite-store"),
	}, nil
}

// tx adapts a gorm transaction handle to storage.Tx.
type tx struct {
	db *gorm.DB
}

var _ storage.Tx = (*tx)(nil)

// InsertNote inserts the note row; gorm populates ID and timestamps.
func (t *tx) InsertNote(ctx context.Context, note *core.Note) error {
	return t.db.WithContext(ctx).Create(note).Error
}

// InsertAttachment inserts one attachment row.
func (t *tx) InsertAttachment(ctx context.Context, attachment *core.Attachment) error {
	return t.db.WithContext(ctx).Create(attachment).Error
}

// WithTransaction runs fn inside a database transaction. Any error from fn
// rolls back every write made through the Tx.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	err := s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(ctx, &tx{db: gtx})
	})
	if err != nil {
		s.logger.Debug("transaction rolled back", "err", err)
	}
	return err
}

// GetNote retrieves a note with attachments ordered by display order.
func (s *Store) GetNote(ctx context.Context, id uint) (*core.Note, error) {
	var note core.Note
	err := s.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note %d", storage.ErrNotFound, id)
		}
		return nil, err
	}
	return &note, nil
}

// ListNotes retrieves up to limit notes, most recent first.
func (s *Store) ListNotes(ctx context.Context, category core.Category, limit int) ([]*core.Note, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notes []*core.Note
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// SoftDeleteNote marks the note and its attachments deleted in one
// transaction. History is retained; reads no longer see the rows.
func (s *Store) SoftDeleteNote(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		result := gtx.Delete(&core.Note{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: note %d", storage.ErrNotFound, id)
		}
		return gtx.Where("note_id = ?", id).Delete(&core.Attachment{}).Error
	})
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
