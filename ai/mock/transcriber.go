package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/poiesic/jot/ai"
)

// MockAudioTranscriber is a test double for ai.AudioTranscriber.
// It allows custom behavior injection via function fields and is safe for
// concurrent use.
type MockAudioTranscriber struct {
	// TranscribeFunc is called by Transcribe if set.
	// If nil, a canned transcript is returned.
	TranscribeFunc func(ctx context.Context, data []byte, mimeType, ref string) ai.Transcription

	mu        sync.Mutex
	callCount int
}

// NewMockAudioTranscriber creates a mock transcriber with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockAudioTranscriber() *MockAudioTranscriber {
	return &MockAudioTranscriber{}
}

// Transcribe returns a canned transcript derived from the input size, or
// delegates to TranscribeFunc when set.
func (m *MockAudioTranscriber) Transcribe(ctx context.Context, data []byte, mimeType, ref string) ai.Transcription {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, data, mimeType, ref)
	}

	return ai.Transcription{
		Text: fmt.Sprintf("mock transcript (%d bytes)", len(data)),
	}
}

// CallCount returns the number of times Transcribe was called.
func (m *MockAudioTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockAudioTranscriber) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.TranscribeFunc = nil
}
