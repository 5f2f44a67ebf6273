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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// VisionHost is the base URL for the image description service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	VisionHost string

	// AudioHost is the base URL for the transcription service API.
	AudioHost string

	// AnalyzerHost is the base URL for the structured analysis service API.
	AnalyzerHost string

	// VisionModel is the multimodal model used for image description.
	// Example: "qwen2.5vl:7b", "gpt-4o-mini"
	VisionModel string

	// AudioModel is the multimodal model used for transcription.
	// Example: "gemini-2.0-flash", "qwen2-audio:7b"
	AudioModel string

	// AnalyzerModel is the model used for structured analysis.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	AnalyzerModel string

	// Token is the API token. Use "none" for local services without auth.
	Token string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithVisionHost sets the image description service host URL.
func WithVisionHost(host string) ConfigOption {
	return func(c *Config) {
		c.VisionHost = host
	}
}

// WithAudioHost sets the transcription service host URL.
func WithAudioHost(host string) ConfigOption {
	return func(c *Config) {
		c.AudioHost = host
	}
}

// WithAnalyzerHost sets the analysis service host URL.
func WithAnalyzerHost(host string) ConfigOption {
	return func(c *Config) {
		c.AnalyzerHost = host
	}
}

// WithHost sets all three service hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.VisionHost = host
		c.AudioHost = host
		c.AnalyzerHost = host
	}
}

// WithVisionModel sets the image description model identifier.
func WithVisionModel(model string) ConfigOption {
	return func(c *Config) {
		c.VisionModel = model
	}
}

// WithAudioModel sets the transcription model identifier.
func WithAudioModel(model string) ConfigOption {
	return func(c *Config) {
		c.AudioModel = model
	}
}

// WithAnalyzerModel sets the analysis model identifier.
func WithAnalyzerModel(model string) ConfigOption {
	return func(c *Config) {
		c.AnalyzerModel = model
	}
}

// WithToken sets the API token used for all three services.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		VisionHost:    defaultHost,
		AudioHost:     defaultHost,
		AnalyzerHost:  defaultHost,
		VisionModel:   "qwen2.5vl:7b",
		AudioModel:    "qwen2-audio:7b",
		AnalyzerModel: "qwen2.5:3b",
		Token:         "none",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to hosts if missing, which is required by most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	c.VisionHost = normalizeHost(c.VisionHost)
	c.AudioHost = normalizeHost(c.AudioHost)
	c.AnalyzerHost = normalizeHost(c.AnalyzerHost)
	if c.Token == "" {
		c.Token = "none"
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.VisionHost == "" {
		return errors.New("ai config: VisionHost is required")
	}
	if c.AudioHost == "" {
		return errors.New("ai config: AudioHost is required")
	}
	if c.AnalyzerHost == "" {
		return errors.New("ai config: AnalyzerHost is required")
	}
	if c.VisionModel == "" {
		return errors.New("ai config: VisionModel is required")
	}
	if c.AudioModel == "" {
		return errors.New("ai config: AudioModel is required")
	}
	if c.AnalyzerModel == "" {
		return errors.New("ai config: AnalyzerModel is required")
	}
	return nil
}
