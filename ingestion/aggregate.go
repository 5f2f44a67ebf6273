package ingestion

import (
	"strings"

	"github.com/poiesic/jot/core"
)

// corpusSeparator joins texts from different sources at paragraph level so
// the analyzer sees source boundaries instead of inferring them.
const corpusSeparator = "\n\n"

// buildCorpus merges the direct text and all extracted texts into one
// corpus, in the fixed order: direct text, image texts in submission order,
// audio texts in submission order. Blank entries are dropped.
//
// Returns core.ErrEmptyCorpus when nothing usable remains, including the
// case where files were submitted but every extraction failed or came back
// blank. The analyzer must never run on an empty corpus.
func buildCorpus(direct string, imageTexts, audioTexts []string) (string, error) {
	parts := make([]string, 0, 1+len(imageTexts)+len(audioTexts))

	appendPart := func(s string) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	appendPart(direct)
	for _, text := range imageTexts {
		appendPart(text)
	}
	for _, text := range audioTexts {
		appendPart(text)
	}

	if len(parts) == 0 {
		return "", core.ErrEmptyCorpus
	}
	return strings.Join(parts, corpusSeparator), nil
}
