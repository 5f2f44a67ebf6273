package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/jot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestParseNoteID(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    uint
		wantErr bool
	}{
		{name: "valid id", arg: "42", want: 42},
		{name: "empty", arg: "", wantErr: true},
		{name: "not a number", arg: "abc", wantErr: true},
		{name: "negative", arg: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseNoteID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestBuildBundle(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "scan.png")
	audioPath := filepath.Join(dir, "memo.ogg")
	require.NoError(t, os.WriteFile(imagePath, []byte("png bytes"), 0o600))
	require.NoError(t, os.WriteFile(audioPath, []byte("ogg bytes"), 0o600))

	bundle, err := buildBundle("some text", []string{imagePath}, []string{audioPath})
	require.NoError(t, err)

	assert.Equal(t, "some text", bundle.Text)
	require.Len(t, bundle.Images, 1)
	assert.Equal(t, "scan.png", bundle.Images[0].Name)
	assert.Equal(t, "image/png", bundle.Images[0].MimeType)
	assert.Equal(t, []byte("png bytes"), bundle.Images[0].Data)
	require.Len(t, bundle.Audio, 1)
	assert.Equal(t, "memo.ogg", bundle.Audio[0].Name)

	// Content is buffered, not referenced by path: the pipeline's cleanup
	// must never delete the user's original files.
	assert.Empty(t, bundle.Images[0].Path)
	assert.Empty(t, bundle.Audio[0].Path)
}

func TestBuildBundleMissingFile(t *testing.T) {
	_, err := buildBundle("", []string{filepath.Join(t.TempDir(), "missing.png")}, nil)
	assert.Error(t, err)
}

func TestPrintNote(t *testing.T) {
	title := "Team standup"
	summary := "Weekly sync"
	ref := "blob://abc"
	text := "img text"
	note := &core.Note{
		ID:       7,
		Category: core.CategoryTask,
		Title:    &title,
		Summary:  &summary,
		Tags:     []string{"work", "meeting"},
		Attachments: []core.Attachment{
			{Modality: core.ModalityImage, FileName: "board.png", StorageRef: ref, ExtractedText: &text, DisplayOrder: 0},
			{Modality: core.ModalityAudio, FileName: "memo.ogg", DisplayOrder: 1},
		},
	}

	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		printNote(&buf, note, false)
		assert.Equal(t, "#7 [task] Team standup\n", buf.String())
	})

	t.Run("detailed", func(t *testing.T) {
		var buf bytes.Buffer
		printNote(&buf, note, true)
		out := buf.String()
		assert.Contains(t, out, "#7 [task] Team standup")
		assert.Contains(t, out, "summary: Weekly sync")
		assert.Contains(t, out, "tags: work, meeting")
		assert.Contains(t, out, "attachment 0: [image] board.png blob://abc")
		assert.Contains(t, out, "attachment 1: [audio] memo.ogg (no storage reference)")
	})
}

func TestSetupLogger(t *testing.T) {
	run := func(level string) error {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(*cli.Context) error { return nil },
		}
		args := []string{"jot"}
		if level != "" {
			args = append(args, "--log-level", level)
		}
		return app.Run(args)
	}

	assert.NoError(t, run(""))
	assert.NoError(t, run("debug"))
	assert.NoError(t, run("WARN"))
	assert.Error(t, run("verbose"))
}

func TestIngestCommandFlags(t *testing.T) {
	t.Run("db is required", func(t *testing.T) {
		app := &cli.App{
			Commands: []*cli.Command{
				{
					Name:   "ingest",
					Action: func(*cli.Context) error { return nil },
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "db", Required: true},
					},
				},
			},
		}
		err := app.Run([]string{"jot", "ingest"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})
}
