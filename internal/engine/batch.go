package engine

import (
	"context"
	"sync"

	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// BatchOptions configures batch classification.
type BatchOptions struct {
	// OnResult is called from worker goroutines after each document.
	OnResult        func(BatchResult)
	APIKey          string
	ParallelWorkers int
	UseAlternate    bool
}

// BatchItem is one document to classify.
type BatchItem struct {
	Name    string
	Content string
}

// BatchResult is the outcome for one BatchItem.
type BatchResult struct {
	Name   string
	Result model.Result
	Index  int
}

// BatchSummary counts the outcomes of a batch.
type BatchSummary struct {
	Total        int
	Classified   int
	Unclassified int
	AIGenerated  int
}

// ClassifyBatch classifies items in parallel and returns the results in
// input order. Items not reached before ctx is canceled are left out.
func (e *Engine) ClassifyBatch(ctx context.Context, items []BatchItem, tree *hierarchy.Branch, opts BatchOptions) ([]BatchResult, BatchSummary) {
	workers := opts.ParallelWorkers
	if workers <= 0 {
		workers = 2
	}

	workChan := make(chan int, len(items))
	for i := range items {
		workChan <- i
	}
	close(workChan)

	resultsChan := make(chan BatchResult, len(items))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			for idx := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				item := items[idx]
				e.logger.Debug("worker classifying document",
					"worker_id", workerID,
					"document", item.Name)

				res := BatchResult{
					Index:  idx,
					Name:   item.Name,
					Result: e.ClassifyContent(ctx, item.Content, tree, opts.UseAlternate, opts.APIKey),
				}
				if opts.OnResult != nil {
					opts.OnResult(res)
				}
				resultsChan <- res
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	ordered := make([]*BatchResult, len(items))
	for res := range resultsChan {
		r := res
		ordered[r.Index] = &r
	}

	results := make([]BatchResult, 0, len(items))
	summary := BatchSummary{}
	for _, r := range ordered {
		if r == nil {
			continue
		}
		results = append(results, *r)

		summary.Total++
		switch {
		case len(r.Result.Suggestions) == 0:
			summary.Unclassified++
		case r.Result.AIGenerated:
			summary.Classified++
			summary.AIGenerated++
		default:
			summary.Classified++
		}
	}

	return results, summary
}
