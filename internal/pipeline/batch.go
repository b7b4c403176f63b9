package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/socialshield/socialshield/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent scanning of multiple handles.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-scan execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each scan.
	// We use a factory to ensure each scan gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent scans.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed scan reports.
	// Access is synchronized via mutex.
	results []*model.ExposureReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scans.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each scan to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak between
// scans and allows for per-scan customization if needed.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     10,
		results:         make([]*model.ExposureReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scans multiple handles concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each handle gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// The returned slice always has exactly one finalized report per handle,
// in input order, even for handles whose scan failed. The error return
// indicates that the batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, handles []model.Handle) ([]*model.ExposureReport, error) {
	bp.logger.Info("starting batch processing",
		"total_handles", len(handles),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.ExposureReport, len(handles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, handle := range handles {
		i, handle := i, handle
		g.Go(func() error {
			report := model.NewExposureReport(handle)

			// Check for cancellation before starting. The report is still
			// stored so the output keeps one entry per handle.
			select {
			case <-ctx.Done():
				report.SetError(ctx.Err())
				report.Finalize()
				bp.store(i, report)
				return ctx.Err()
			default:
			}

			bp.logger.Info("scanning handle",
				"handle", handle,
				"index", i+1,
				"total", len(handles),
			)

			// Create and execute pipeline
			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, report)
			report.Finalize()

			// Store result regardless of error
			// The report contains error information if the scan failed
			bp.store(i, report)

			if err != nil {
				bp.logger.Warn("scan failed",
					"handle", handle,
					"error", err,
				)
				// Don't return error to errgroup - we want to continue other
				// scans. The error is recorded in the report.
				return nil
			}

			bp.logger.Info("scan completed",
				"handle", handle,
			)

			return nil
		})
	}

	// Wait for all scans to complete
	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Info("batch processing complete",
		"total_handles", len(handles),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// ProcessBatchWithCallback scans multiple handles and calls a callback
// for each completed scan. This is useful for streaming results.
//
// The callback receives the report and the index of the handle in the
// original slice. The callback is called from the goroutine that completed
// the scan, so it should be thread-safe if it accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	handles []model.Handle,
	callback func(report *model.ExposureReport, index int),
) error {
	bp.logger.Info("starting batch processing with callback",
		"total_handles", len(handles),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, handle := range handles {
		i, handle := i, handle
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewExposureReport(handle)
			pipeline := bp.pipelineFactory()
			_ = pipeline.Execute(ctx, report) //nolint:errcheck // Error is stored in report
			report.Finalize()

			// Call the callback with the result
			callback(report, i)

			return nil
		})
	}

	return g.Wait()
}

func (bp *BatchProcessor) store(i int, report *model.ExposureReport) {
	bp.mu.Lock()
	bp.results[i] = report
	bp.mu.Unlock()
}
