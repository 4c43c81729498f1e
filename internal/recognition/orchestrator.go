package recognition

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docflowhq/docflow/internal/entity"
)

// ErrTimeout marks a task that exceeded its recognition deadline.
var ErrTimeout = errors.New("recognition timed out")

// Orchestrator fans page recognition out across a bounded number of
// concurrent engine calls and reassembles results strictly by page number.
type Orchestrator struct {
	provider *Provider
	limit    int
	base     time.Duration // task deadline = base + perPage * pages
	perPage  time.Duration
	logger   *slog.Logger
}

type OrchestratorOption func(*Orchestrator)

func WithMaxConcurrent(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.limit = n
		}
	}
}

func WithTimeouts(base, perPage time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if base > 0 {
			o.base = base
		}
		if perPage > 0 {
			o.perPage = perPage
		}
	}
}

func NewOrchestrator(provider *Provider, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		provider: provider,
		limit:    4,
		base:     30 * time.Second,
		perPage:  20 * time.Second,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run recognizes the target pages of one task. pages maps 1-based page number
// to page bytes; targets selects and orders the pages to process. Individual
// page failures are recorded in their PageResult; only a task-level deadline
// produces an error, and even then the partial results are returned for the
// audit trail.
func (o *Orchestrator) Run(ctx context.Context, taskID string, pages map[int][]byte, targets []int, format, language string, preference []string) ([]entity.PageResult, error) {
	deadline := o.base + o.perPage*time.Duration(len(targets))
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	start := time.Now()
	o.logger.Info("recognition started",
		"task_id", taskID,
		"pages", len(targets),
		"max_concurrent", o.limit,
		"deadline", deadline.String(),
	)

	var mu sync.Mutex
	results := make([]entity.PageResult, 0, len(targets))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.limit)

	for _, pageNo := range targets {
		data, ok := pages[pageNo]
		if !ok {
			mu.Lock()
			results = append(results, entity.PageResult{
				PageNo:        pageNo,
				FailureReason: "page missing from document",
			})
			mu.Unlock()
			continue
		}
		eg.Go(func() error {
			res := o.provider.RecognizePage(gctx, Input{
				Data:     data,
				Format:   format,
				PageNo:   pageNo,
				Language: language,
			}, preference)
			res.TaskID = taskID
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait() // page errors are carried in results, never returned

	// Completion order is irrelevant; page order is not.
	sort.Slice(results, func(i, j int) bool { return results[i].PageNo < results[j].PageNo })

	if ctx.Err() == context.DeadlineExceeded {
		o.logger.Error("recognition deadline exceeded", "task_id", taskID, "elapsed", time.Since(start).String())
		return results, ErrTimeout
	}

	o.logger.Info("recognition finished", "task_id", taskID, "elapsed", time.Since(start).String())
	return results, nil
}
