package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/jot/ai"
	"github.com/poiesic/jot/blobstore"
	"github.com/poiesic/jot/core"
	"github.com/poiesic/jot/storage"
)

// Timeouts bounds every external call the pipeline makes. Each call gets
// its own independent deadline; expiry is treated as that call's failure,
// never as a pipeline-level interrupt.
type Timeouts struct {
	Upload  time.Duration
	Image   time.Duration
	Audio   time.Duration
	Analyze time.Duration
}

// DefaultTimeouts returns the per-call bounds used unless overridden.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Upload:  10 * time.Second,
		Image:   30 * time.Second,
		Audio:   60 * time.Second,
		Analyze: 15 * time.Second,
	}
}

// Pipeline orchestrates the multi-modal ingestion flow.
// It manages concurrent processing of image and audio inputs, aggregation,
// structured analysis, and the atomic write of the result.
type Pipeline struct {
	store    storage.RecordStore
	blobs    blobstore.Store
	provider ai.Provider
	writer   *Writer
	pool     *ants.Pool
	timeouts Timeouts
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent file processing.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithTimeouts overrides the per-call deadline bounds.
// Zero fields fall back to their defaults.
func WithTimeouts(timeouts Timeouts) Option {
	return func(p *Pipeline) error {
		defaults := DefaultTimeouts()
		if timeouts.Upload <= 0 {
			timeouts.Upload = defaults.Upload
		}
		if timeouts.Image <= 0 {
			timeouts.Image = defaults.Image
		}
		if timeouts.Audio <= 0 {
			timeouts.Audio = defaults.Audio
		}
		if timeouts.Analyze <= 0 {
			timeouts.Analyze = defaults.Analyze
		}
		p.timeouts = timeouts
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	store storage.RecordStore,
	blobs blobstore.Store,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if blobs == nil {
		return nil, ErrBlobStoreRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store:    store,
		blobs:    blobs,
		provider: provider,
		writer:   NewWriter(store),
		pool:     pool,
		timeouts: DefaultTimeouts(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest runs one bundle through the full pipeline and returns the
// persisted note plus per-file failures. The returned error is one of the
// hard-stop conditions (empty input, empty corpus, malformed analysis,
// unsupported category, persistence failure); per-file failures never
// surface here, they ride inside the result.
//
// The bundle's on-disk files are discarded once a result has been
// produced, success or failure.
func (p *Pipeline) Ingest(ctx context.Context, bundle *core.InputBundle) (*core.PipelineResult, error) {
	// Validating: reject before any resources are consumed.
	if err := core.ValidateBundle(bundle); err != nil {
		return nil, err
	}

	defer func() {
		if err := bundle.Discard(); err != nil {
			p.logger.Warn("failed to discard input files", "err", err)
		}
	}()

	// ProcessingMedia: both modality batches run concurrently; both settle
	// before anything downstream starts. This stage cannot fail the
	// pipeline, it only contributes to the failures list.
	var imageResult, audioResult batchResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		imageResult = p.processBatch(ctx, bundle.Images, core.ModalityImage)
	}()
	go func() {
		defer wg.Done()
		audioResult = p.processBatch(ctx, bundle.Audio, core.ModalityAudio)
	}()
	wg.Wait()

	failures := make([]core.FileFailure, 0, len(imageResult.failures)+len(audioResult.failures))
	failures = append(failures, imageResult.failures...)
	failures = append(failures, audioResult.failures...)

	// Aggregating: hard stop when nothing usable remains.
	corpus, err := buildCorpus(bundle.Text, imageResult.texts, audioResult.texts)
	if err != nil {
		return nil, err
	}

	// Analyzing.
	analysis, err := p.analyze(ctx, corpus)
	if err != nil {
		return nil, err
	}

	// Persisting: all or nothing.
	note, err := p.writer.Persist(ctx, analysis, imageResult.attachments, audioResult.attachments, strings.TrimSpace(bundle.Text))
	if err != nil {
		return nil, err
	}

	p.logger.Info("bundle ingested",
		"note", note.ID,
		"category", note.Category,
		"images", len(imageResult.attachments),
		"audio", len(audioResult.attachments),
		"failures", len(failures))

	return &core.PipelineResult{Note: note, Failures: failures}, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
