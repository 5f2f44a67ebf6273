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


package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/poiesic/jot/core"
)

// maxListEntries caps every array field of the analysis.
const maxListEntries = 5

// analyze submits the corpus to the analyzer under its own deadline and
// normalizes the response. Analyzer errors are fatal: no partial record
// survives them.
func (p *Pipeline) analyze(ctx context.Context, corpus string) (*core.Analysis, error) {
	actx, cancel := context.WithTimeout(ctx, p.timeouts.Analyze)
	defer cancel()

	raw, err := p.provider.Analyzer().Analyze(actx, corpus)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	return normalizeAnalysis(raw)
}

// normalizeAnalysis validates the raw analyzer response field by field.
// Unknown or mistyped fields are coerced to null/empty rather than failing,
// with two fatal exceptions: a body that does not parse as a JSON object at
// all, and a category outside the fixed enumeration (no fallback category
// is guessed). This defends the pipeline against malformed upstream output
// while keeping partially-useful analyses.
func normalizeAnalysis(raw json.RawMessage) (*core.Analysis, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedAnalysis, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: response is not an object", core.ErrMalformedAnalysis)
	}

	categoryStr, _ := fields["category"].(string)
	category := core.Category(strings.TrimSpace(categoryStr))
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %v", core.ErrUnsupportedCategory, fields["category"])
	}

	return &core.Analysis{
		Category:  category,
		Title:     stringField(fields, "title"),
		Content:   stringField(fields, "content"),
		Summary:   stringField(fields, "summary"),
		EventDate: stringField(fields, "event_date"),
		EventTime: stringField(fields, "event_time"),
		Location:  stringField(fields, "location"),
		Reminders: listField(fields, "reminders"),
		Emotion:   stringField(fields, "emotion"),
		Intensity: intensityField(fields, "intensity"),
		Tags:      listField(fields, "tags"),
		Keywords:  listField(fields, "keywords"),
		Completed: boolField(fields, "completed"),
	}, nil
}

// stringField passes a value through only if it is actually string-typed
// and non-blank; everything else becomes null.
func stringField(fields map[string]any, key string) *string {
	s, ok := fields[key].(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// listField keeps at most maxListEntries string entries, trimmed and
// non-blank, preserving the original order. Non-array or non-string
// content is dropped.
func listField(fields map[string]any, key string) []string {
	items, ok := fields[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, maxListEntries)
	for _, item := range items {
		if len(out) == maxListEntries {
			break
		}
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// intensityField coerces the value to a finite integer in 1..10, or null.
func intensityField(fields map[string]any, key string) *int {
	n, ok := fields[key].(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	v := int(math.Round(n))
	if v < 1 || v > 10 {
		return nil
	}
	return &v
}

// boolField requires an exactly boolean-typed value; anything else is null.
func boolField(fields map[string]any, key string) *bool {
	b, ok := fields[key].(bool)
	if !ok {
		return nil
	}
	return &b
}
