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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/jot/core"
	"github.com/poiesic/jot/storage"
)

// Writer persists one analysis together with all of its attachments as a
// single atomic unit. The transaction contains nothing but the inserts:
// no network call ever runs inside it, so its duration is uncoupled from
// upload and inference latency.
type Writer struct {
	store  storage.RecordStore
	logger *slog.Logger
}

// NewWriter creates a transactional writer over the given record store.
func NewWriter(store storage.RecordStore) *Writer {
	return &Writer{
		store:  store,
		logger: slog.Default().With("component", "writer"),
	}
}

// Persist inserts the note and its attachment rows in one transaction:
// image attachments first in submission order (display order from 0),
// audio attachments continuing the sequence, and, when direct text was
// supplied, one synthetic text attachment in the final slot. Any failure
// rolls back every prior insert; partial attachment sets are never visible.
func (w *Writer) Persist(ctx context.Context, analysis *core.Analysis, images, audio []*core.Attachment, directText string) (*core.Note, error) {
	note := noteFromAnalysis(analysis)

	err := w.store.WithTransaction(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.InsertNote(ctx, note); err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		if note.ID == 0 {
			return core.ErrMissingRecordID
		}

		order := 0
		for _, attachment := range images {
			attachment.NoteID = note.ID
			attachment.DisplayOrder = order
			if err := tx.InsertAttachment(ctx, attachment); err != nil {
				return fmt.Errorf("insert image attachment %q: %w", attachment.FileName, err)
			}
			order++
		}
		for _, attachment := range audio {
			attachment.NoteID = note.ID
			attachment.DisplayOrder = order
			if err := tx.InsertAttachment(ctx, attachment); err != nil {
				return fmt.Errorf("insert audio attachment %q: %w", attachment.FileName, err)
			}
			order++
		}

		if directText != "" {
			text := directText
			synthetic := &core.Attachment{
				NoteID:        note.ID,
				Modality:      core.ModalityText,
				MimeType:      "text/plain",
				SizeBytes:     int64(len(directText)),
				ExtractedText: &text, // stored verbatim
				Processed:     true,
				DisplayOrder:  order,
			}
			if err := tx.InsertAttachment(ctx, synthetic); err != nil {
				return fmt.Errorf("insert text attachment: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	w.logger.Debug("note persisted", "note", note.ID, "images", len(images), "audio", len(audio))
	return note, nil
}

// noteFromAnalysis maps the normalized analysis onto a fresh note row.
func noteFromAnalysis(analysis *core.Analysis) *core.Note {
	return &core.Note{
		Category:  analysis.Category,
		Title:     analysis.Title,
		Content:   analysis.Content,
		Summary:   analysis.Summary,
		EventDate: analysis.EventDate,
		EventTime: analysis.EventTime,
		Location:  analysis.Location,
		Reminders: analysis.Reminders,
		Emotion:   analysis.Emotion,
		Intensity: analysis.Intensity,
		Tags:      analysis.Tags,
		Keywords:  analysis.Keywords,
		Completed: analysis.Completed,
	}
}
