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


package blobstore

import "errors"

var (
	// ErrNotFound indicates the referenced object does not exist.
	ErrNotFound = errors.New("blob not found")

	// ErrInvalidRef indicates a reference whose scheme or shape does not
	// belong to the backend it was handed to.
	ErrInvalidRef = errors.New("invalid blob reference")

	// ErrEmptyBlob indicates an upload of zero bytes.
	ErrEmptyBlob = errors.New("blob is empty")
)
