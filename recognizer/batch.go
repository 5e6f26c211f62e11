package recognizer

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/vrdraw/vrdraw/log"
	"github.com/vrdraw/vrdraw/model"
)

// ClassifyBatch classifies candidates on at most concurrency goroutines.
// Results are in candidate order. When ctx is cancelled the remaining
// candidates are left as NoMatch and ctx's error is returned.
func (r *Recognizer) ClassifyBatch(ctx context.Context, candidates []model.Stroke, concurrency int64) ([]model.ClassificationResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]model.ClassificationResult, len(candidates))
	sem := semaphore.NewWeighted(concurrency)

	var err error
	for i := range candidates {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("Failed to acquire semaphore: %v", err)
			break
		}
		go func(i int) {
			defer sem.Release(1)
			results[i] = r.Classify(candidates[i])
		}(i)
	}

	// Wait for all goroutines to finish
	if werr := sem.Acquire(context.Background(), concurrency); werr != nil {
		log.Trace.Printf("Failed to acquire semaphore: %v", werr)
	}

	return results, err
}
