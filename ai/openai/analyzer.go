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
	"errors"
	"log/slog"

	"github.com/poiesic/jot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Analyzer implements ai.Analyzer using an OpenAI-compatible chat API.
type Analyzer struct {
	client llms.Model
	logger *slog.Logger
}

// newAnalyzer is the internal constructor returning the concrete type.
func newAnalyzer(config *ai.Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AnalyzerHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.AnalyzerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		client: client,
		logger: slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewAnalyzer creates a structured analyzer using the provided configuration.
//
// Returns the ai.Analyzer interface to enforce abstraction.
func NewAnalyzer(config *ai.Config) (ai.Analyzer, error) {
	return newAnalyzer(config)
}

// Analyze submits the corpus and returns the model's JSON body after fence
// stripping and repair. The body is not validated field-by-field here: the
// pipeline owns normalization, so every provider is defended the same way.
//
// The call is made exactly once. Analyzer invocations are not idempotent
// (they cost money), so retrying is the caller's decision.
func (a *Analyzer) Analyze(ctx context.Context, text string) (json.RawMessage, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnalysisPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		a.logger.Error("analysis request failed", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, errors.New("analyzer returned no choices")
	}

	raw := repairJSON(stripFences(response.Choices[0].Content))
	a.logger.Debug("analysis response received", "len", len(raw))
	return json.RawMessage(raw), nil
}
