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
	"log/slog"

	"github.com/poiesic/jot/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the image extractor, audio transcriber, and analyzer instances.
type Provider struct {
	config      *ai.Config
	vision      *ImageExtractor
	transcriber *AudioTranscriber
	analyzer    *Analyzer
	logger      *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	vision, err := newImageExtractor(config)
	if err != nil {
		return nil, err
	}

	transcriber, err := newAudioTranscriber(config)
	if err != nil {
		return nil, err
	}

	analyzer, err := newAnalyzer(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:      config,
		vision:      vision,
		transcriber: transcriber,
		analyzer:    analyzer,
		logger:      slog.Default().With("component", "openai-provider"),
	}, nil
}

// ImageExtractor returns the image description service.
func (p *Provider) ImageExtractor() ai.ImageExtractor {
	return p.vision
}

// AudioTranscriber returns the audio transcription service.
func (p *Provider) AudioTranscriber() ai.AudioTranscriber {
	return p.transcriber
}

// Analyzer returns the structured analysis service.
func (p *Provider) Analyzer() ai.Analyzer {
	return p.analyzer
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
