package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/speller/affix"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/storage"
)

const (
	defaultBatchSize     = 1000
	defaultMaxExpansions = 1000
)

// Pipeline loads stems into a dictionary and expands them against an affix
// manager. Expansion runs concurrently on a worker pool; the manager is
// shared by every worker since it never changes after loading.
type Pipeline struct {
	manager        *affix.Manager
	stems          storage.StemRepository
	info           storage.InfoRepository
	pool           *ants.Pool
	batchSize      int
	maxExpansions  int
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent expansion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many stems are written or expanded together.
// Default is 1000.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithMaxExpansions caps the number of forms produced per stem, the stem
// itself included. Default is 1000.
func WithMaxExpansions(limit int) Option {
	return func(p *Pipeline) error {
		if limit < 1 {
			return fmt.Errorf("max expansions must be positive, got %d", limit)
		}
		p.maxExpansions = limit
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

// WithProgress reports progress to w every interval stems.
// Progress is not reported by default.
func WithProgress(w io.Writer, interval int) Option {
	return func(p *Pipeline) error {
		p.progress = w
		p.reportInterval = interval
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	manager *affix.Manager,
	stems storage.StemRepository,
	info storage.InfoRepository,
	opts ...Option,
) (*Pipeline, error) {
	if manager == nil {
		return nil, ErrManagerRequired
	}
	if stems == nil {
		return nil, ErrStemRepositoryRequired
	}
	if info == nil {
		return nil, ErrInfoRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		manager:       manager,
		stems:         stems,
		info:          info,
		pool:          pool,
		batchSize:     defaultBatchSize,
		maxExpansions: defaultMaxExpansions,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest stores stems in batches and then records the dictionary info for
// the pipeline's affix manager. Stems already stored gain the new flags.
func (p *Pipeline) Ingest(ctx context.Context, stems []*core.Stem) error {
	tracker := p.tracker("Loading", len(stems))

	for start := 0; start < len(stems); start += p.batchSize {
		end := min(start+p.batchSize, len(stems))
		if _, err := p.stems.AddStems(ctx, stems[start:end]...); err != nil {
			return fmt.Errorf("failed to add stems %d-%d: %w", start, end-1, err)
		}
		tracker.Increment(end - start)
	}
	tracker.Finish()

	count, err := p.stems.CountStems(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stems: %w", err)
	}

	info := &core.DictionaryInfo{
		AffixFingerprint: p.manager.Fingerprint(),
		Encoding:         p.manager.Encoding(),
		StemCount:        count,
	}
	if err := p.info.SaveInfo(ctx, info); err != nil {
		return fmt.Errorf("failed to save dictionary info: %w", err)
	}

	p.logger.Info("ingested stems", "added", len(stems), "stored", count, "affix", p.manager.Name())
	return nil
}

// ExpandFunc receives a stored stem and its surface forms.
type ExpandFunc func(stem *core.Stem, forms []affix.Expansion) error

// expandedBatch is a batch of stems on its way through the pool. done is
// closed once forms is filled in.
type expandedBatch struct {
	stems []*core.Stem
	forms [][]affix.Expansion
	done  chan struct{}
}

// ExpandAll expands every stored stem and calls fn with the results in
// dictionary order. Batches are expanded concurrently but fn is only ever
// called from one goroutine at a time. The first error, from fn or from
// storage, stops the pass and is returned.
func (p *Pipeline) ExpandAll(ctx context.Context, fn ExpandFunc) error {
	total, err := p.stems.CountStems(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stems: %w", err)
	}
	tracker := p.tracker("Expanding", int(total))
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pending := make(chan *expandedBatch, p.pool.Cap())
	deliverDone := make(chan struct{})
	var deliverErr error

	go func() {
		defer close(deliverDone)
		for b := range pending {
			<-b.done
			if deliverErr != nil {
				continue
			}
			for i, stem := range b.stems {
				if err := fn(stem, b.forms[i]); err != nil {
					deliverErr = err
					cancel()
					break
				}
			}
			tracker.Increment(len(b.stems))
		}
	}()

	submit := func(stems []*core.Stem) error {
		b := &expandedBatch{
			stems: stems,
			forms: make([][]affix.Expansion, len(stems)),
			done:  make(chan struct{}),
		}
		select {
		case pending <- b:
		case <-ctx.Done():
			return ctx.Err()
		}
		err := p.pool.Submit(func() {
			defer close(b.done)
			for i, stem := range b.stems {
				b.forms[i] = p.manager.Expand(stem.Word, stem.Flags, p.maxExpansions)
			}
		})
		if err != nil {
			close(b.done)
			return fmt.Errorf("failed to submit expansion batch: %w", err)
		}
		return nil
	}

	batch := make([]*core.Stem, 0, p.batchSize)
	iterErr := p.stems.ForEachStem(ctx, func(stem *core.Stem) error {
		batch = append(batch, stem)
		if len(batch) < p.batchSize {
			return nil
		}
		full := batch
		batch = make([]*core.Stem, 0, p.batchSize)
		return submit(full)
	})
	if iterErr == nil && len(batch) > 0 {
		iterErr = submit(batch)
	}

	close(pending)
	<-deliverDone

	if deliverErr != nil {
		return deliverErr
	}
	if iterErr != nil {
		return iterErr
	}

	tracker.Finish()
	p.logger.Debug("expanded stems", "stems", total, "elapsed", time.Since(start))
	return nil
}

// tracker returns a started progress tracker, or one that reports nowhere
// when progress is disabled.
func (p *Pipeline) tracker(label string, total int) *ProgressTracker {
	if p.progress == nil {
		return &ProgressTracker{}
	}
	t := NewProgressTracker(p.progress, label, total, p.reportInterval)
	t.Start()
	return t
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
