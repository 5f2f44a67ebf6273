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


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/jot/ai"
	"github.com/poiesic/jot/ai/openai"
	"github.com/poiesic/jot/blobstore"
	"github.com/poiesic/jot/blobstore/badger"
	"github.com/poiesic/jot/blobstore/minio"
	"github.com/poiesic/jot/core"
	"github.com/poiesic/jot/ingestion"
	"github.com/poiesic/jot/storage/sqlite"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "jot",
		Usage: "Multi-modal note capture with AI analysis",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest text, images and audio into one analyzed note",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite database file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "text",
						Aliases: []string{"t"},
						Usage:   "Direct text input",
					},
					&cli.StringSliceFlag{
						Name:    "image",
						Aliases: []string{"i"},
						Usage:   "Path to an image file (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:    "audio",
						Aliases: []string{"a"},
						Usage:   "Path to an audio file (repeatable)",
					},
					&cli.StringFlag{
						Name:  "blob-dir",
						Usage: "Path to the local blob store directory",
						Value: "jot-blobs",
					},
					&cli.StringFlag{
						Name:  "minio-endpoint",
						Usage: "MinIO endpoint; when set, blobs go to MinIO instead of the local store",
					},
					&cli.StringFlag{
						Name:  "minio-access-key",
						Usage: "MinIO access key",
					},
					&cli.StringFlag{
						Name:  "minio-secret-key",
						Usage: "MinIO secret key",
					},
					&cli.StringFlag{
						Name:  "minio-bucket",
						Usage: "MinIO bucket for uploaded media",
						Value: "jot-media",
					},
					&cli.BoolFlag{
						Name:  "minio-ssl",
						Usage: "Use TLS for the MinIO connection",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "AI service host URL for all three services",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "vision-model",
						Usage: "Model used for image description",
					},
					&cli.StringFlag{
						Name:  "audio-model",
						Usage: "Model used for audio transcription",
					},
					&cli.StringFlag{
						Name:  "analyzer-model",
						Usage: "Model used for structured analysis",
					},
					&cli.StringFlag{
						Name:  "ai-token",
						Usage: "API token for the AI services",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for concurrent file processing",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List recent notes",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite database file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Filter by category (task, idea, mood)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of notes to list",
						Value: 20,
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Show one note with its attachments",
				Action:    showCommand,
				ArgsUsage: "<note-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite database file",
						Required: true,
					},
				},
			},
			{
				Name:      "delete",
				Usage:     "Soft-delete a note and its attachments",
				Action:    deleteCommand,
				ArgsUsage: "<note-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite database file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "blob-dir",
						Usage: "Local blob store directory; when set, stored media is removed as well",
					},
					&cli.StringFlag{
						Name:  "minio-endpoint",
						Usage: "MinIO endpoint; when set, stored media is removed from MinIO as well",
					},
					&cli.StringFlag{
						Name:  "minio-access-key",
						Usage: "MinIO access key",
					},
					&cli.StringFlag{
						Name:  "minio-secret-key",
						Usage: "MinIO secret key",
					},
					&cli.StringFlag{
						Name:  "minio-bucket",
						Usage: "MinIO bucket for uploaded media",
						Value: "jot-media",
					},
					&cli.BoolFlag{
						Name:  "minio-ssl",
						Usage: "Use TLS for the MinIO connection",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	bundle, err := buildBundle(c.String("text"), c.StringSlice("image"), c.StringSlice("audio"))
	if err != nil {
		return err
	}

	store, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	blobs, err := openBlobStore(c)
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}
	defer blobs.Close()

	aiOpts := []ai.ConfigOption{ai.WithHost(c.String("ai-host"))}
	if model := c.String("vision-model"); model != "" {
		aiOpts = append(aiOpts, ai.WithVisionModel(model))
	}
	if model := c.String("audio-model"); model != "" {
		aiOpts = append(aiOpts, ai.WithAudioModel(model))
	}
	if model := c.String("analyzer-model"); model != "" {
		aiOpts = append(aiOpts, ai.WithAnalyzerModel(model))
	}
	if token := c.String("ai-token"); token != "" {
		aiOpts = append(aiOpts, ai.WithToken(token))
	}

	aiConfig := ai.NewConfig(aiOpts...)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	var opts []ingestion.Option
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	}

	pipeline, err := ingestion.NewPipeline(store, blobs, provider, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	result, err := pipeline.Ingest(ctx, bundle)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", failure.Filename, failure.Message)
	}
	printNote(os.Stdout, result.Note, true)

	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	category := core.Category(c.String("category"))
	if category != "" && !category.Valid() {
		return fmt.Errorf("unknown category %q: must be one of task, idea, mood", category)
	}

	store, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	notes, err := store.ListNotes(ctx, category, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	for _, note := range notes {
		printNote(os.Stdout, note, false)
	}

	return nil
}

func showCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseNoteID(c.Args().First())
	if err != nil {
		return err
	}

	store, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	note, err := store.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note %d: %w", id, err)
	}

	printNote(os.Stdout, note, true)
	return nil
}

func deleteCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseNoteID(c.Args().First())
	if err != nil {
		return err
	}

	store, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	// Collect refs before the row disappears from reads.
	var refs []string
	if c.String("blob-dir") != "" || c.String("minio-endpoint") != "" {
		note, err := store.GetNote(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get note %d: %w", id, err)
		}
		for _, att := range note.Attachments {
			if att.StorageRef != "" {
				refs = append(refs, att.StorageRef)
			}
		}
	}

	if err := store.SoftDeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}

	// Blob cleanup is best effort; the soft delete already succeeded.
	if len(refs) > 0 {
		blobs, err := openBlobStore(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: blob store unavailable, stored media kept: %v\n", err)
		} else {
			defer blobs.Close()
			for _, ref := range refs {
				if err := blobs.Delete(ctx, ref); err != nil {
					fmt.Fprintf(os.Stderr, "warning: could not remove %s: %v\n", ref, err)
				}
			}
		}
	}

	fmt.Printf("deleted note %d\n", id)
	return nil
}

// buildBundle assembles the pipeline input from CLI arguments. File content
// is buffered in memory so the pipeline's cleanup never touches the user's
// original files.
func buildBundle(text string, imagePaths, audioPaths []string) (*core.InputBundle, error) {
	bundle := &core.InputBundle{Text: text}

	for _, path := range imagePaths {
		file, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		bundle.Images = append(bundle.Images, file)
	}
	for _, path := range audioPaths {
		file, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		bundle.Audio = append(bundle.Audio, file)
	}

	return bundle, nil
}

// loadFile reads one input file and infers its media type from the
// extension.
func loadFile(path string) (core.RawFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.RawFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return core.RawFile{
		Name:     filepath.Base(path),
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

// openBlobStore picks the blob backend: MinIO when an endpoint was given,
// otherwise the local store under blob-dir.
func openBlobStore(c *cli.Context) (blobstore.Store, error) {
	if endpoint := c.String("minio-endpoint"); endpoint != "" {
		return minio.NewStore(minio.Config{
			Endpoint:  endpoint,
			AccessKey: c.String("minio-access-key"),
			SecretKey: c.String("minio-secret-key"),
			Bucket:    c.String("minio-bucket"),
			UseSSL:    c.Bool("minio-ssl"),
		})
	}
	return badger.OpenStore(c.String("blob-dir"), false)
}

func parseNoteID(arg string) (uint, error) {
	if arg == "" {
		return 0, fmt.Errorf("note id is required")
	}
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return uint(id), nil
}

// printNote writes a compact single-line summary, or the full record with
// attachments when detailed is set.
func printNote(w io.Writer, note *core.Note, detailed bool) {
	title := ""
	if note.Title != nil {
		title = *note.Title
	}
	fmt.Fprintf(w, "#%d [%s] %s\n", note.ID, note.Category, title)

	if !detailed {
		return
	}

	if note.Summary != nil {
		fmt.Fprintf(w, "  summary: %s\n", *note.Summary)
	}
	if note.Content != nil {
		fmt.Fprintf(w, "  content: %s\n", *note.Content)
	}
	if note.EventDate != nil {
		when := *note.EventDate
		if note.EventTime != nil {
			when += " " + *note.EventTime
		}
		fmt.Fprintf(w, "  when: %s\n", when)
	}
	if note.Location != nil {
		fmt.Fprintf(w, "  location: %s\n", *note.Location)
	}
	if note.Emotion != nil {
		line := *note.Emotion
		if note.Intensity != nil {
			line += fmt.Sprintf(" (%d/10)", *note.Intensity)
		}
		fmt.Fprintf(w, "  emotion: %s\n", line)
	}
	if len(note.Tags) > 0 {
		fmt.Fprintf(w, "  tags: %s\n", strings.Join(note.Tags, ", "))
	}
	if len(note.Keywords) > 0 {
		fmt.Fprintf(w, "  keywords: %s\n", strings.Join(note.Keywords, ", "))
	}
	if len(note.Reminders) > 0 {
		fmt.Fprintf(w, "  reminders: %s\n", strings.Join(note.Reminders, ", "))
	}
	if note.Completed != nil {
		fmt.Fprintf(w, "  completed: %t\n", *note.Completed)
	}

	for _, att := range note.Attachments {
		ref := att.StorageRef
		if ref == "" {
			ref = "(no storage reference)"
		}
		fmt.Fprintf(w, "  attachment %d: [%s] %s %s\n", att.DisplayOrder, att.Modality, att.FileName, ref)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
