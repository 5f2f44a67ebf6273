package mock

import (
	"context"
	"encoding/json"
	"sync"
)

// defaultAnalysis is a schema-conformant response used when no custom
// behavior is injected.
const defaultAnalysis = `{
  "category": "idea",
  "title": "Mock note",
  "content": "Mock content.",
  "summary": "Mock summary.",
  "event_date": null,
  "event_time": null,
  "location": null,
  "reminders": [],
  "emotion": null,
  "intensity": null,
  "tags": ["mock"],
  "keywords": ["mock"],
  "completed": null
}`

// MockAnalyzer is a test double for ai.Analyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, a valid canned analysis is returned.
	AnalyzeFunc func(ctx context.Context, text string) (json.RawMessage, error)

	mu        sync.Mutex
	callCount int
	lastInput string
}

// NewMockAnalyzer creates a mock analyzer with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// Analyze records the input and returns the canned analysis, or delegates
// to AnalyzeFunc when set.
func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (json.RawMessage, error) {
	m.mu.Lock()
	m.callCount++
	m.lastInput = text
	m.mu.Unlock()

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text)
	}

	return json.RawMessage(defaultAnalysis), nil
}

// CallCount returns the number of times Analyze was called.
func (m *MockAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastInput returns the corpus passed to the most recent Analyze call.
// Useful for asserting aggregation order.
func (m *MockAnalyzer) LastInput() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInput
}

// Reset clears the call count, recorded input and custom function.
func (m *MockAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastInput = ""
	m.AnalyzeFunc = nil
}
