package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/poiesic/jot/ai"
)

// MockImageExtractor is a test double for ai.ImageExtractor.
// It allows custom behavior injection via function fields and is safe for
// concurrent use, matching the interface contract.
type MockImageExtractor struct {
	// DescribeFunc is called by Describe if set.
	// If nil, a canned extraction is returned.
	DescribeFunc func(ctx context.Context, data []byte, mimeType, ref string) ai.ImageExtraction

	mu        sync.Mutex
	callCount int
}

// NewMockImageExtractor creates a mock image extractor with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockImageExtractor() *MockImageExtractor {
	return &MockImageExtractor{}
}

// Describe returns a canned extraction derived from the input size, or
// delegates to DescribeFunc when set.
func (m *MockImageExtractor) Describe(ctx context.Context, data []byte, mimeType, ref string) ai.ImageExtraction {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.DescribeFunc != nil {
		return m.DescribeFunc(ctx, data, mimeType, ref)
	}

	return ai.ImageExtraction{
		Text:    fmt.Sprintf("mock ocr text (%d bytes)", len(data)),
		Summary: "a mock image",
	}
}

// CallCount returns the number of times Describe was called.
func (m *MockImageExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockImageExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.DescribeFunc = nil
}
