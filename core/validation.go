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

import (
	"fmt"
	"strings"
)

// ValidateBundle checks that an input bundle carries at least one usable
// input: non-blank direct text, an image, or an audio file.
//
// Per-file media types are NOT validated here; that happens in the file
// processors so a single mistyped file fails alone instead of rejecting
// the whole request.
func ValidateBundle(bundle *InputBundle) error {
	if bundle == nil {
		return fmt.Errorf("%w: bundle is nil", ErrEmptyInput)
	}

	if strings.TrimSpace(bundle.Text) == "" && len(bundle.Images) == 0 && len(bundle.Audio) == 0 {
		return ErrEmptyInput
	}

	return nil
}

// ValidateMediaType checks that a file's declared media type belongs to the
// modality it was submitted under.
//
// Validation rules:
//   - image files must declare an image/* media type
//   - audio files must declare an audio/* media type
func ValidateMediaType(file *RawFile, modality Modality) error {
	declared := strings.ToLower(strings.TrimSpace(file.MimeType))

	var want string
	switch modality {
	case ModalityImage:
		want = "image/"
	case ModalityAudio:
		want = "audio/"
	default:
		return fmt.Errorf("%w: modality %q takes no files", ErrInvalidMediaType, modality)
	}

	if !strings.HasPrefix(declared, want) {
		return fmt.Errorf("%w: %q declared %q", ErrInvalidMediaType, file.Name, file.MimeType)
	}
	return nil
}
