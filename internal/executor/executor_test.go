package executor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"newsfuse/internal/feed"
)

func TestRunBounded_ConcurrencyBound(t *testing.T) {
	const taskCount = 5
	const delay = 50 * time.Millisecond

	var running, peak int32

	tasks := make([]Task, taskCount)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) ([]feed.Article, error) {
			current := atomic.AddInt32(&running, 1)
			for {
				observed := atomic.LoadInt32(&peak)
				if current <= observed || atomic.CompareAndSwapInt32(&peak, observed, current) {
					break
				}
			}
			time.Sleep(delay)
			atomic.AddInt32(&running, -1)
			return []feed.Article{{Title: "x", Link: "https://example.com/x"}}, nil
		}
	}

	start := time.Now()
	results := RunBounded(context.Background(), tasks, 2)
	elapsed := time.Since(start)

	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Errorf("more than 2 tasks ran simultaneously: %d", got)
	}
	if len(results) != taskCount {
		t.Fatalf("expected %d results, got %d", taskCount, len(results))
	}
	// ceil(5/2) = 3 sequential batches.
	if elapsed < 3*delay {
		t.Errorf("batches overlapped: finished in %v, want at least %v", elapsed, 3*delay)
	}
	if elapsed > 5*delay {
		t.Errorf("batches did not run in parallel: took %v", elapsed)
	}
}

func TestRunBounded_IsolatesFailures(t *testing.T) {
	tasks := []Task{
		func(ctx context.Context) ([]feed.Article, error) {
			return nil, errors.New("source down")
		},
		func(ctx context.Context) ([]feed.Article, error) {
			return []feed.Article{{Title: "ok", Link: "https://example.com/ok"}}, nil
		},
	}

	results := RunBounded(context.Background(), tasks, 2)

	if results[0].Err == nil {
		t.Errorf("expected first task to report its error")
	}
	if results[1].Err != nil || len(results[1].Articles) != 1 {
		t.Errorf("failure of one task must not affect the other")
	}
}

func TestRunBounded_ClampsConcurrency(t *testing.T) {
	task := func(ctx context.Context) ([]feed.Article, error) { return nil, nil }

	// Zero and huge values must both work via clamping.
	if got := RunBounded(context.Background(), []Task{task, task}, 0); len(got) != 2 {
		t.Errorf("concurrency 0: expected 2 results, got %d", len(got))
	}
	if got := RunBounded(context.Background(), []Task{task, task}, 100); len(got) != 2 {
		t.Errorf("concurrency 100: expected 2 results, got %d", len(got))
	}
}

func TestRunBounded_EmptyTaskList(t *testing.T) {
	if got := RunBounded(context.Background(), nil, 3); len(got) != 0 {
		t.Errorf("expected no results for no tasks, got %d", len(got))
	}
}
