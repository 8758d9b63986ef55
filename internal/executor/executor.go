// Package executor runs independent fetch tasks with a capped number in
// flight, isolating per-task failure.
package executor

import (
	"context"
	"sync"

	"newsfuse/internal/feed"
)

// Task is a zero-argument unit of work bound to one source configuration.
// Tasks must not panic; transport errors are returned, never thrown.
type Task func(ctx context.Context) ([]feed.Article, error)

// Result is the settled outcome of one task.
type Result struct {
	Articles []feed.Article
	Err      error
}

const (
	minConcurrency = 1
	maxConcurrency = 10
)

// RunBounded partitions tasks into sequential batches of size concurrency
// (clamped to [1,10]). Within a batch all tasks run in parallel and the
// batch completes only when every task has settled, so one failing or slow
// source cannot starve the others. Batches run one after another, bounding
// peak concurrent outbound connections. No retry happens here: a failed
// task simply contributes zero articles.
func RunBounded(ctx context.Context, tasks []Task, concurrency int) []Result {
	if concurrency < minConcurrency {
		concurrency = minConcurrency
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	results := make([]Result, len(tasks))

	for start := 0; start < len(tasks); start += concurrency {
		end := start + concurrency
		if end > len(tasks) {
			end = len(tasks)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				articles, err := tasks[idx](ctx)
				results[idx] = Result{Articles: articles, Err: err}
			}(i)
		}
		wg.Wait()
	}

	return results
}
