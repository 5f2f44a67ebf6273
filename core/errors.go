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


package core

import "errors"

// Pipeline failure taxonomy. File-scoped failures are contained in
// FileFailure values and never surface through these sentinels.
var (
	// ErrEmptyInput indicates a bundle with no text, no images and no audio.
	// Rejected before any processing starts.
	ErrEmptyInput = errors.New("input bundle is empty")

	// ErrEmptyCorpus indicates that no usable text remained after media
	// processing. The analyzer must not be invoked in this case.
	ErrEmptyCorpus = errors.New("no text could be extracted from any input")

	// ErrMalformedAnalysis indicates the analyzer response could not be
	// parsed as the expected structured shape at all.
	ErrMalformedAnalysis = errors.New("malformed analyzer response")

	// ErrUnsupportedCategory indicates the analyzer produced a category
	// outside the fixed enumeration. No fallback category is guessed.
	ErrUnsupportedCategory = errors.New("unsupported category")

	// ErrMissingRecordID indicates the record store did not assign an id
	// on insert. The surrounding transaction is rolled back.
	ErrMissingRecordID = errors.New("record store returned no id")

	// ErrInvalidMediaType indicates a file's declared media type does not
	// match the modality it was submitted under.
	ErrInvalidMediaType = errors.New("media type does not match modality")
)
