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
	"strings"
	"testing"

	"github.com/poiesic/jot/ai"
	"github.com/poiesic/jot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageFile(name string, content string) core.RawFile {
	return core.RawFile{
		Name:     name,
		MimeType: "image/png",
		Data:     []byte(content),
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	p, provider, _ := setupPipeline(t)

	result := p.processBatch(context.Background(), nil, core.ModalityImage)

	assert.Empty(t, result.texts)
	assert.Empty(t, result.attachments)
	assert.Empty(t, result.failures)
	assert.Equal(t, 0, provider.GetMockImageExtractor().CallCount())
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	p, provider, _ := setupPipeline(t)

	provider.GetMockImageExtractor().DescribeFunc = func(_ context.Context, data []byte, _, _ string) ai.ImageExtraction {
		if strings.Contains(string(data), "poison") {
			return ai.ImageExtraction{Err: "model refused the image"}
		}
		return ai.ImageExtraction{Text: "text from " + string(data)}
	}

	files := []core.RawFile{
		imageFile("a.png", "a"),
		imageFile("b.png", "poison"),
		imageFile("c.png", "c"),
		imageFile("d.png", "d"),
	}

	result := p.processBatch(context.Background(), files, core.ModalityImage)

	require.Len(t, result.failures, 1)
	assert.Equal(t, "b.png", result.failures[0].Filename)
	assert.Equal(t, "model refused the image", result.failures[0].Message)

	// Surviving files keep their submission order despite concurrent
	// execution.
	require.Len(t, result.attachments, 3)
	assert.Equal(t, "a.png", result.attachments[0].FileName)
	assert.Equal(t, "c.png", result.attachments[1].FileName)
	assert.Equal(t, "d.png", result.attachments[2].FileName)

	assert.Equal(t, []string{"text from a", "text from c", "text from d"}, result.texts)
	assert.Equal(t, 4, provider.GetMockImageExtractor().CallCount())
}

func TestProcessBatchBlankExtractionKeepsAttachment(t *testing.T) {
	p, provider, _ := setupPipeline(t)

	provider.GetMockImageExtractor().DescribeFunc = func(context.Context, []byte, string, string) ai.ImageExtraction {
		return ai.ImageExtraction{Text: "   "}
	}

	result := p.processBatch(context.Background(), []core.RawFile{imageFile("blank.png", "x")}, core.ModalityImage)

	// A blank extraction is not a failure: the attachment survives as
	// unprocessed and contributes nothing to the corpus.
	require.Len(t, result.attachments, 1)
	assert.False(t, result.attachments[0].Processed)
	assert.Nil(t, result.attachments[0].ExtractedText)
	assert.Empty(t, result.texts)
	assert.Empty(t, result.failures)
}

func TestProcessBatchRejectsWrongMediaType(t *testing.T) {
	p, provider, _ := setupPipeline(t)

	files := []core.RawFile{
		imageFile("scan.png", "ok"),
		{Name: "report.pdf", MimeType: "application/pdf", Data: []byte("%PDF")},
	}

	result := p.processBatch(context.Background(), files, core.ModalityImage)

	require.Len(t, result.failures, 1)
	assert.Equal(t, "report.pdf", result.failures[0].Filename)
	require.Len(t, result.attachments, 1)
	assert.Equal(t, "scan.png", result.attachments[0].FileName)

	// The rejected file never reaches the extractor.
	assert.Equal(t, 1, provider.GetMockImageExtractor().CallCount())
}

func TestProcessBatchContainsPanics(t *testing.T) {
	p, provider, _ := setupPipeline(t)

	provider.GetMockImageExtractor().DescribeFunc = func(_ context.Context, data []byte, _, _ string) ai.ImageExtraction {
		if string(data) == "boom" {
			panic("extractor bug")
		}
		return ai.ImageExtraction{Text: "fine"}
	}

	files := []core.RawFile{
		imageFile("good.png", "ok"),
		imageFile("bad.png", "boom"),
	}

	result := p.processBatch(context.Background(), files, core.ModalityImage)

	require.Len(t, result.failures, 1)
	assert.Equal(t, "bad.png", result.failures[0].Filename)
	assert.Contains(t, result.failures[0].Message, "internal error")
	require.Len(t, result.attachments, 1)
	assert.Equal(t, "good.png", result.attachments[0].FileName)
}

func TestProcessBatchUploadsToBlobStore(t *testing.T) {
	p, _, _ := setupPipeline(t)

	result := p.processBatch(context.Background(), []core.RawFile{imageFile("scan.png", "content")}, core.ModalityImage)

	require.Len(t, result.attachments, 1)
	assert.True(t, strings.HasPrefix(result.attachments[0].StorageRef, "blob://"))
	assert.Equal(t, int64(len("content")), result.attachments[0].SizeBytes)
}
