package ai

import (
	"context"
	"encoding/json"
)

// ImageExtraction is the in-band result of describing one image.
// A transport or model failure is reported through Err; the call itself
// never returns a Go error.
type ImageExtraction struct {
	// Text is the text recovered from the image (OCR plus visible context).
	Text string

	// Summary is a one-or-two sentence description of the image.
	Summary string

	// Err is the in-band failure description. Empty on success.
	Err string
}

// Transcription is the in-band result of transcribing one audio file.
type Transcription struct {
	// Text is the transcript. Empty when nothing intelligible was heard.
	Text string

	// Err is the in-band failure description. Empty on success.
	Err string
}

// ImageExtractor recovers text and a summary from a raw image.
// Implementations must be thread-safe for concurrent use and must never
// return a Go error: failures are carried inside the result so that one
// bad image cannot unwind a batch.
type ImageExtractor interface {
	// Describe analyzes the image bytes. ref optionally carries the remote
	// storage reference when an upload preceded extraction; implementations
	// may use it for provenance but must work with an empty ref.
	Describe(ctx context.Context, data []byte, mimeType, ref string) ImageExtraction
}

// AudioTranscriber produces a transcript from a raw audio file.
// Same calling convention as ImageExtractor: in-band failure, never raises.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, data []byte, mimeType, ref string) Transcription
}

// Analyzer turns an aggregated text corpus into a structured analysis.
// Unlike the extractors it DOES return an error: an analyzer failure is
// fatal to the pipeline, so it travels on the ordinary error channel.
//
// The raw JSON is returned unvalidated; field-by-field normalization is
// the caller's concern.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (json.RawMessage, error)
}

// Provider aggregates the AI capabilities for convenient initialization
// and lifecycle management.
type Provider interface {
	// ImageExtractor returns the image description service.
	ImageExtractor() ImageExtractor

	// AudioTranscriber returns the audio transcription service.
	AudioTranscriber() AudioTranscriber

	// Analyzer returns the structured analysis service.
	Analyzer() Analyzer

	// Close releases resources held by the provider and its services.
	Close() error
}
