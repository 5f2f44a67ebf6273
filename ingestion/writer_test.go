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
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/jot/core"
	"github.com/poiesic/jot/storage"
	"github.com/poiesic/jot/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalysis() *core.Analysis {
	title := "Team standup"
	return &core.Analysis{
		Category: core.CategoryTask,
		Title:    &title,
		Tags:     []string{"work"},
	}
}

func testAttachments(modality core.Modality, n int) []*core.Attachment {
	out := make([]*core.Attachment, n)
	for i := range out {
		text := fmt.Sprintf("%s text %d", modality, i)
		out[i] = &core.Attachment{
			Modality:      modality,
			FileName:      fmt.Sprintf("%s-%d.bin", modality, i),
			MimeType:      "application/octet-stream",
			SizeBytes:     10,
			ExtractedText: &text,
			Processed:     true,
		}
	}
	return out
}

func TestPersistDisplayOrder(t *testing.T) {
	tests := []struct {
		name   string
		images int
		audio  int
		text   string
	}{
		{name: "images audio and text", images: 2, audio: 1, text: "direct note"},
		{name: "text only", text: "just text"},
		{name: "media only", images: 1, audio: 2},
		{name: "single image", images: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := sqlite.NewTestStore(t.TempDir())
			require.NoError(t, err)
			defer store.Close()

			writer := NewWriter(store)
			note, err := writer.Persist(context.Background(), testAnalysis(),
				testAttachments(core.ModalityImage, tt.images),
				testAttachments(core.ModalityAudio, tt.audio),
				tt.text)
			require.NoError(t, err)
			require.NotZero(t, note.ID)

			loaded, err := store.GetNote(context.Background(), note.ID)
			require.NoError(t, err)

			total := tt.images + tt.audio
			if tt.text != "" {
				total++
			}
			require.Len(t, loaded.Attachments, total)

			// Display order is a contiguous sequence: images first, then
			// audio, then the synthetic text attachment.
			for i, att := range loaded.Attachments {
				assert.Equal(t, i, att.DisplayOrder)
				switch {
				case i < tt.images:
					assert.Equal(t, core.ModalityImage, att.Modality)
				case i < tt.images+tt.audio:
					assert.Equal(t, core.ModalityAudio, att.Modality)
				default:
					assert.Equal(t, core.ModalityText, att.Modality)
					require.NotNil(t, att.ExtractedText)
					assert.Equal(t, tt.text, *att.ExtractedText)
					assert.True(t, att.Processed)
				}
			}
		})
	}
}

func TestPersistRollsBackOnAttachmentFailure(t *testing.T) {
	tests := []struct {
		name   string
		images int
		audio  int
		text   string
		failOn int
	}{
		{name: "second image insert fails", images: 2, failOn: 2},
		{name: "audio insert fails after images", images: 1, audio: 1, failOn: 2},
		{name: "text insert fails last", images: 1, text: "direct", failOn: 2},
		{name: "first insert fails", images: 3, audio: 1, failOn: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := sqlite.NewTestStore(t.TempDir())
			require.NoError(t, err)
			defer store.Close()

			flaky := &flakyStore{RecordStore: store, failOn: tt.failOn}
			writer := NewWriter(flaky)

			_, err = writer.Persist(context.Background(), testAnalysis(),
				testAttachments(core.ModalityImage, tt.images),
				testAttachments(core.ModalityAudio, tt.audio),
				tt.text)
			require.Error(t, err)

			// The rollback must leave no trace: not the note, not the
			// attachments inserted before the failure.
			notes, err := store.ListNotes(context.Background(), "", 0)
			require.NoError(t, err)
			assert.Empty(t, notes)
		})
	}
}

func TestPersistRequiresGeneratedID(t *testing.T) {
	writer := NewWriter(&noIDStore{})

	_, err := writer.Persist(context.Background(), testAnalysis(), nil, nil, "text")
	assert.ErrorIs(t, err, core.ErrMissingRecordID)
}

// flakyStore wraps a real record store and fails the nth attachment insert
// inside the transaction, exercising the rollback path against sqlite.
type flakyStore struct {
	storage.RecordStore
	failOn int
}

func (s *flakyStore) WithTransaction(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
	return s.RecordStore.WithTransaction(ctx, func(ctx context.Context, tx storage.Tx) error {
		return fn(ctx, &flakyTx{inner: tx, failOn: s.failOn})
	})
}

type flakyTx struct {
	inner  storage.Tx
	failOn int
	calls  int
}

func (t *flakyTx) InsertNote(ctx context.Context, note *core.Note) error {
	return t.inner.InsertNote(ctx, note)
}

func (t *flakyTx) InsertAttachment(ctx context.Context, attachment *core.Attachment) error {
	t.calls++
	if t.calls == t.failOn {
		return errors.New("injected attachment failure")
	}
	return t.inner.InsertAttachment(ctx, attachment)
}

// noIDStore simulates a backend whose insert succeeds without populating
// the generated note id.
type noIDStore struct {
	storage.RecordStore
}

func (s *noIDStore) WithTransaction(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
	return fn(ctx, noIDTx{})
}

type noIDTx struct{}

func (noIDTx) InsertNote(context.Context, *core.Note) error { return nil }

func (noIDTx) InsertAttachment(context.Context, *core.Attachment) error { return nil }
