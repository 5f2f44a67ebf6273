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
	"fmt"
	"strings"

	"github.com/poiesic/jot/core"
)

// processFile runs the full per-file sequence for one raw input:
// media-type check, degraded upload, extraction, attachment assembly.
// Every failure is converted into a failure outcome carrying the original
// filename; nothing escapes to the sibling tasks. The file's local copy is
// NOT removed here: cleanup timing belongs to the pipeline.
func (p *Pipeline) processFile(ctx context.Context, file *core.RawFile, modality core.Modality) core.FileOutcome {
	if err := core.ValidateMediaType(file, modality); err != nil {
		return core.FailureOutcome(file.Name, err.Error())
	}

	data, err := file.Bytes()
	if err != nil {
		return core.FailureOutcome(file.Name, fmt.Sprintf("read file: %v", err))
	}

	// Upload runs in degraded mode: a missing reference lowers provenance,
	// it must not abort the file.
	ref := p.upload(ctx, file, data)

	var text string
	switch modality {
	case core.ModalityImage:
		ictx, cancel := context.WithTimeout(ctx, p.timeouts.Image)
		extraction := p.provider.ImageExtractor().Describe(ictx, data, file.MimeType, ref)
		cancel()
		if extraction.Err != "" {
			return core.FailureOutcome(file.Name, extraction.Err)
		}
		text = extraction.Text
	case core.ModalityAudio:
		actx, cancel := context.WithTimeout(ctx, p.timeouts.Audio)
		transcription := p.provider.AudioTranscriber().Transcribe(actx, data, file.MimeType, ref)
		cancel()
		if transcription.Err != "" {
			return core.FailureOutcome(file.Name, transcription.Err)
		}
		text = transcription.Text
	default:
		return core.FailureOutcome(file.Name, fmt.Sprintf("no processor for modality %q", modality))
	}

	size := file.Size
	if size == 0 {
		size = int64(len(data))
	}

	attachment := &core.Attachment{
		Modality:   modality,
		StorageRef: ref,
		FileName:   file.Name,
		MimeType:   file.MimeType,
		SizeBytes:  size,
		Processed:  strings.TrimSpace(text) != "",
	}
	if attachment.Processed {
		attachment.ExtractedText = &text
	}

	return core.SuccessOutcome(text, attachment)
}

// upload pushes the file to the blob store under its own deadline.
// Failure is logged and yields an empty reference; callers can still tell
// "extracted but no permanent reference" apart from an extraction failure
// because the attachment survives with an empty StorageRef.
func (p *Pipeline) upload(ctx context.Context, file *core.RawFile, data []byte) string {
	uctx, cancel := context.WithTimeout(ctx, p.timeouts.Upload)
	defer cancel()

	ref, err := p.blobs.Upload(uctx, data, file.MimeType)
	if err != nil {
		p.logger.Warn("upload failed, continuing without reference", "file", file.Name, "err", err)
		return ""
	}
	return ref
}
