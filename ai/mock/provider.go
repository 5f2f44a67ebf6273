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


package mock

import "github.com/poiesic/jot/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock extractor, transcriber, and analyzer instances.
type MockProvider struct {
	vision      *MockImageExtractor
	transcriber *MockAudioTranscriber
	analyzer    *MockAnalyzer
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockImageExtractor()/GetMockAudioTranscriber()/
// GetMockAnalyzer() to access concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		vision:      NewMockImageExtractor(),
		transcriber: NewMockAudioTranscriber(),
		analyzer:    NewMockAnalyzer(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(vision *MockImageExtractor, transcriber *MockAudioTranscriber, analyzer *MockAnalyzer) ai.Provider {
	return &MockProvider{
		vision:      vision,
		transcriber: transcriber,
		analyzer:    analyzer,
	}
}

// ImageExtractor returns the mock image extractor.
func (p *MockProvider) ImageExtractor() ai.ImageExtractor {
	return p.vision
}

// AudioTranscriber returns the mock transcriber.
func (p *MockProvider) AudioTranscriber() ai.AudioTranscriber {
	return p.transcriber
}

// Analyzer returns the mock analyzer.
func (p *MockProvider) Analyzer() ai.Analyzer {
	return p.analyzer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockImageExtractor returns the underlying mock for test assertions.
func (p *MockProvider) GetMockImageExtractor() *MockImageExtractor {
	return p.vision
}

// GetMockAudioTranscriber returns the underlying mock for test assertions.
func (p *MockProvider) GetMockAudioTranscriber() *MockAudioTranscriber {
	return p.transcriber
}

// GetMockAnalyzer returns the underlying mock for test assertions.
func (p *MockProvider) GetMockAnalyzer() *MockAnalyzer {
	return p.analyzer
}
