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
	"sync"

	"github.com/poiesic/jot/core"
)

// batchResult aggregates the settled outcomes of one modality batch.
// All three slices preserve the submission order of their source files.
type batchResult struct {
	texts       []string           // non-blank extracted texts, successes only
	attachments []*core.Attachment // successes only, blank extractions included
	failures    []core.FileFailure // one entry per failed file
}

// processBatch fans the files of one modality out on the worker pool and
// joins before collecting. Each task writes only its own index-addressed
// outcome slot; the merge happens strictly after every task has settled, so
// one slow or failing file never blocks or cancels its siblings.
//
// An empty input yields an empty result without touching the extractors or
// the blob store.
func (p *Pipeline) processBatch(ctx context.Context, files []core.RawFile, modality core.Modality) batchResult {
	if len(files) == 0 {
		return batchResult{}
	}

	outcomes := make([]core.FileOutcome, len(files))
	var wg sync.WaitGroup

	for i := range files {
		file := &files[i]
		slot := i

		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error("file task panicked", "file", file.Name, "panic", r)
					outcomes[slot] = core.FailureOutcome(file.Name, fmt.Sprintf("internal error: %v", r))
				}
			}()
			outcomes[slot] = p.processFile(ctx, file, modality)
		}

		if err := p.pool.Submit(task); err != nil {
			// Pool saturated or released; run inline rather than dropping
			// the file.
			p.logger.Warn("worker pool rejected task, running inline", "file", file.Name, "err", err)
			task()
		}
	}

	wg.Wait()

	var result batchResult
	for _, outcome := range outcomes {
		if outcome.Failed() {
			result.failures = append(result.failures, *outcome.Failure)
			continue
		}
		result.attachments = append(result.attachments, outcome.Attachment)
		if strings.TrimSpace(outcome.Text) != "" {
			result.texts = append(result.texts, outcome.Text)
		}
	}
	return result
}
