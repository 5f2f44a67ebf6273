package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/poiesic/jot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnalysisFullRecord(t *testing.T) {
	raw := json.RawMessage(`{
		"category": "task",
		"title": "Dentist appointment",
		"content": "Annual cleaning at Dr. Webb's office.",
		"summary": "Dentist visit",
		"event_date": "2026-09-03",
		"event_time": "14:30",
		"location": "Dr. Webb's office",
		"reminders": ["book parking"],
		"emotion": "neutral",
		"intensity": 3,
		"tags": ["health", "appointment"],
		"keywords": ["dentist", "cleaning"],
		"completed": false
	}`)

	analysis, err := normalizeAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, core.CategoryTask, analysis.Category)
	require.NotNil(t, analysis.Title)
	assert.Equal(t, "Dentist appointment", *analysis.Title)
	require.NotNil(t, analysis.EventDate)
	assert.Equal(t, "2026-09-03", *analysis.EventDate)
	require.NotNil(t, analysis.Intensity)
	assert.Equal(t, 3, *analysis.Intensity)
	assert.Equal(t, []string{"health", "appointment"}, analysis.Tags)
	require.NotNil(t, analysis.Completed)
	assert.False(t, *analysis.Completed)
}

func TestNormalizeAnalysisCoercesBadFields(t *testing.T) {
	// Every field except category is wrong-typed or out of range; all of
	// them must degrade to null instead of failing the analysis.
	raw := json.RawMessage(`{
		"category": "mood",
		"title": 42,
		"content": ["not", "a", "string"],
		"summary": "   ",
		"event_date": null,
		"reminders": "not an array",
		"intensity": "7",
		"tags": [1, 2, 3],
		"completed": "yes"
	}`)

	analysis, err := normalizeAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, core.CategoryMood, analysis.Category)
	assert.Nil(t, analysis.Title)
	assert.Nil(t, analysis.Content)
	assert.Nil(t, analysis.Summary)
	assert.Nil(t, analysis.EventDate)
	assert.Nil(t, analysis.Reminders)
	assert.Nil(t, analysis.Intensity)
	assert.Nil(t, analysis.Tags)
	assert.Nil(t, analysis.Completed)
}

func TestNormalizeAnalysisListCap(t *testing.T) {
	raw := json.RawMessage(`{
		"category": "idea",
		"tags": ["a", "b", "", "c", 7, "d", "e", "f", "g"],
		"keywords": ["one", "two"]
	}`)

	analysis, err := normalizeAnalysis(raw)
	require.NoError(t, err)

	// Blank and non-string entries are skipped before the cap applies, so
	// the first five usable values survive in their original order.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, analysis.Tags)
	assert.Equal(t, []string{"one", "two"}, analysis.Keywords)
}

func TestNormalizeAnalysisIntensityBounds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "in range", raw: `{"category": "mood", "intensity": 7}`, want: intPtr(7)},
		{name: "lower bound", raw: `{"category": "mood", "intensity": 1}`, want: intPtr(1)},
		{name: "upper bound", raw: `{"category": "mood", "intensity": 10}`, want: intPtr(10)},
		{name: "rounded", raw: `{"category": "mood", "intensity": 6.6}`, want: intPtr(7)},
		{name: "too low", raw: `{"category": "mood", "intensity": 0}`, want: nil},
		{name: "too high", raw: `{"category": "mood", "intensity": 11}`, want: nil},
		{name: "negative", raw: `{"category": "mood", "intensity": -3}`, want: nil},
		{name: "missing", raw: `{"category": "mood"}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := normalizeAnalysis(json.RawMessage(tt.raw))
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, analysis.Intensity)
			} else {
				require.NotNil(t, analysis.Intensity)
				assert.Equal(t, *tt.want, *analysis.Intensity)
			}
		})
	}
}

func TestNormalizeAnalysisCategoryIsFatal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown value", raw: `{"category": "journal"}`},
		{name: "missing", raw: `{"title": "no category"}`},
		{name: "wrong type", raw: `{"category": 3}`},
		{name: "blank", raw: `{"category": "  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeAnalysis(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, core.ErrUnsupportedCategory)
		})
	}
}

func TestNormalizeAnalysisMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `I could not produce JSON for this input.`},
		{name: "json null", raw: `null`},
		{name: "array body", raw: `[{"category": "task"}]`},
		{name: "truncated", raw: `{"category": "task", "title": "cut`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeAnalysis(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, core.ErrMalformedAnalysis)
		})
	}
}

func intPtr(v int) *int { return &v }
