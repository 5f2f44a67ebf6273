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
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/jot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ImageExtractor implements ai.ImageExtractor using an OpenAI-compatible
// multimodal chat API.
type ImageExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// visionResponse matches the JSON shape requested by visionPrompt.
type visionResponse struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// newImageExtractor is the internal constructor returning the concrete type.
func newImageExtractor(config *ai.Config) (*ImageExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.VisionHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.VisionModel),
	)
	if err != nil {
		return nil, err
	}

	return &ImageExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-vision"),
	}, nil
}

// NewImageExtractor creates an image extractor using the provided configuration.
//
// Returns the ai.ImageExtractor interface to enforce abstraction.
func NewImageExtractor(config *ai.Config) (ai.ImageExtractor, error) {
	return newImageExtractor(config)
}

// Describe sends the image to the vision model and parses the text/summary
// response. All failures, transport included, are reported in-band: the
// extraction contract never raises.
func (e *ImageExtractor) Describe(ctx context.Context, data []byte, mimeType, ref string) ai.ImageExtraction {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(visionPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(mimeType, data),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		e.logger.Error("vision request failed", "ref", ref, "err", err)
		return ai.ImageExtraction{Err: err.Error()}
	}

	if len(response.Choices) < 1 {
		e.logger.Debug("no choices returned from vision model", "ref", ref)
		return ai.ImageExtraction{Err: "vision model returned no choices"}
	}

	raw := repairJSON(stripFences(response.Choices[0].Content))

	var parsed visionResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// Some models answer with plain prose despite the JSON instruction.
		// The prose is still usable extraction output.
		e.logger.Warn("vision response was not JSON, using raw text", "err", err)
		return ai.ImageExtraction{Text: strings.TrimSpace(response.Choices[0].Content)}
	}

	e.logger.Debug("image described", "ref", ref, "textLen", len(parsed.Text))
	return ai.ImageExtraction{
		Text:    strings.TrimSpace(parsed.Text),
		Summary: strings.TrimSpace(parsed.Summary),
	}
}
