package core

import (
	"os"
	"time"

	"gorm.io/gorm"
)

// Category classifies a note produced by structured analysis.
type Category string

const (
	// CategoryTask is an actionable item, possibly with scheduling fields.
	CategoryTask Category = "task"
	// CategoryIdea is a free-form thought or plan.
	CategoryIdea Category = "idea"
	// CategoryMood is an emotional state record.
	CategoryMood Category = "mood"
)

// Categories lists every valid category value.
var Categories = []Category{CategoryTask, CategoryIdea, CategoryMood}

// Valid reports whether the category is part of the fixed enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Modality identifies the kind of raw input an attachment was derived from.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
)

// Note is the structured record produced by analysis and persisted together
// with its attachments. All fields except Category are nullable.
type Note struct {
	ID        uint           `gorm:"primaryKey"`
	Category  Category       `gorm:"size:16;not null;index"`
	Title     *string        `gorm:"size:255"`
	Content   *string        `gorm:"type:text"`
	Summary   *string        `gorm:"type:text"`
	EventDate *string        `gorm:"size:64"`
	EventTime *string        `gorm:"size:64"`
	Location  *string        `gorm:"size:255"`
	Reminders []string       `gorm:"serializer:json"`
	Emotion   *string        `gorm:"size:64"`
	Intensity *int           // 1-10 when set
	Tags      []string       `gorm:"serializer:json"`
	Keywords  []string       `gorm:"serializer:json"`
	Completed *bool
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Attachments []Attachment `gorm:"foreignKey:NoteID"`
}

// Attachment is one row per raw input, foreign-keyed to its note.
// DisplayOrder preserves the submission sequence across modalities.
type Attachment struct {
	ID            uint     `gorm:"primaryKey"`
	NoteID        uint     `gorm:"not null;index"`
	Modality      Modality `gorm:"size:16;not null"`
	StorageRef    string   `gorm:"size:500"` // empty when the upload was skipped or failed
	FileName      string   `gorm:"size:255"`
	MimeType      string   `gorm:"size:100"`
	SizeBytes     int64
	ExtractedText *string `gorm:"type:text"` // OCR text, transcript, or verbatim direct text
	Processed     bool    `gorm:"not null;default:false"`
	DisplayOrder  int     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// Analysis is the normalized output of the structured analyzer, before
// persistence. The transactional writer maps it onto a Note.
type Analysis struct {
	Category  Category
	Title     *string
	Content   *string
	Summary   *string
	EventDate *string
	EventTime *string
	Location  *string
	Reminders []string
	Emotion   *string
	Intensity *int
	Tags      []string
	Keywords  []string
	Completed *bool
}

// RawFile is one binary input. Content is carried either in Data or on disk
// at Path; the file is immutable once received and is discarded by the
// pipeline after a result has been produced.
type RawFile struct {
	Name     string // original filename, used in failure reports
	MimeType string // declared media type
	Size     int64
	Data     []byte
	Path     string // set when the content lives on disk instead of Data
}

// Bytes returns the file content, reading from disk when necessary.
func (f *RawFile) Bytes() ([]byte, error) {
	if f.Data != nil {
		return f.Data, nil
	}
	return os.ReadFile(f.Path)
}

// Discard removes the on-disk copy, if any. Buffered content is left to the
// garbage collector.
func (f *RawFile) Discard() error {
	if f.Path == "" {
		return nil
	}
	return os.Remove(f.Path)
}

// InputBundle is the transient per-request input: optional direct text plus
// ordered image and audio files. At least one of the three must be present.
type InputBundle struct {
	Text   string
	Images []RawFile
	Audio  []RawFile
}

// Discard removes every on-disk file copy in the bundle.
// All files are attempted; the first error is returned.
func (b *InputBundle) Discard() error {
	var first error
	for i := range b.Images {
		if err := b.Images[i].Discard(); err != nil && first == nil {
			first = err
		}
	}
	for i := range b.Audio {
		if err := b.Audio[i].Discard(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// FileFailure describes a single file whose processing failed.
type FileFailure struct {
	Filename string
	Message  string
}

// FileOutcome is the discriminated result of processing one RawFile:
// either extracted text plus an attachment, or a failure. Never both.
type FileOutcome struct {
	Text       string
	Attachment *Attachment
	Failure    *FileFailure
}

// SuccessOutcome builds an outcome for a processed file.
func SuccessOutcome(text string, attachment *Attachment) FileOutcome {
	return FileOutcome{Text: text, Attachment: attachment}
}

// FailureOutcome builds an outcome for a failed file.
func FailureOutcome(filename, message string) FileOutcome {
	return FileOutcome{Failure: &FileFailure{Filename: filename, Message: message}}
}

// Failed reports whether the outcome carries a failure.
func (o FileOutcome) Failed() bool {
	return o.Failure != nil
}

// PipelineResult is the transient response of one ingest run: the persisted
// note plus per-file failures surfaced as warnings.
type PipelineResult struct {
	Note     *Note
	Failures []FileFailure
}
