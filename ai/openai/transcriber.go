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


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/jot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// AudioTranscriber implements ai.AudioTranscriber using an OpenAI-compatible
// multimodal chat API.
type AudioTranscriber struct {
	client llms.Model
	logger *slog.Logger
}

// newAudioTranscriber is the internal constructor returning the concrete type.
func newAudioTranscriber(config *ai.Config) (*AudioTranscriber, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AudioHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.AudioModel),
	)
	if err != nil {
		return nil, err
	}

	return &AudioTranscriber{
		client: client,
		logger: slog.Default().With("component", "openai-transcriber"),
	}, nil
}

// NewAudioTranscriber creates a transcriber using the provided configuration.
//
// Returns the ai.AudioTranscriber interface to enforce abstraction.
func NewAudioTranscriber(config *ai.Config) (ai.AudioTranscriber, error) {
	return newAudioTranscriber(config)
}

// Transcribe sends the recording to the audio model and returns the
// transcript. Failures are reported in-band; the call never raises.
func (t *AudioTranscriber) Transcribe(ctx context.Context, data []byte, mimeType, ref string) ai.Transcription {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(transcriptionPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(mimeType, data),
			},
		},
	}

	response, err := t.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		t.logger.Error("transcription request failed", "ref", ref, "err", err)
		return ai.Transcription{Err: err.Error()}
	}

	if len(response.Choices) < 1 {
		t.logger.Debug("no choices returned from audio model", "ref", ref)
		return ai.Transcription{Err: "audio model returned no choices"}
	}

	transcript := strings.TrimSpace(response.Choices[0].Content)
	t.logger.Debug("audio transcribed", "ref", ref, "textLen", len(transcript))
	return ai.Transcription{Text: transcript}
}
