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


// Package ai provides abstractions for the AI services used in Jot.
//
// This package defines interfaces for the three inference capabilities the
// ingestion pipeline depends on: image description, audio transcription,
// and structured analysis. The core domain and pipeline logic depend on
// these abstractions rather than concrete implementations.
//
// # Error Channel Asymmetry
//
// The two extraction capabilities (ImageExtractor, AudioTranscriber) report
// failure in-band through an Err field on their result types and never
// return a Go error. Their failures are scoped to a single file and are
// recovered locally by the pipeline. The Analyzer returns an ordinary
// error: its failure is fatal to the whole request. Keep this asymmetry
// when adding implementations; the recovery policy differs on each side.
//
// # Implementation Packages
//
//   - ai/openai: production implementations using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	extraction := provider.ImageExtractor().Describe(ctx, imgBytes, "image/png", "")
//	if extraction.Err != "" {
//	    // handle per-file failure
//	}
package ai
