// Package batch scores many candidate request sets against the tray optimizer
// concurrently. The optimizer itself is pure and lock-free, so the pool is
// nothing more than a bounded fan-out over candidates; production planners use
// it to compare alternative work-order compositions by resulting tray life.
package batch

import (
	"context"
	"sync"

	"github.com/ketos-lab/traylims/pkg/optimizer"
)

// Result is the outcome of optimizing one candidate request set.
type Result struct {
	// Index is the candidate's position in the evaluated slice.
	Index int
	// IDs is the candidate request set as submitted.
	IDs []int
	// Config is the packed tray, nil when Err is set.
	Config *optimizer.Configuration
	// Err is the optimizer error for this candidate, or the context error when
	// evaluation was cancelled before the candidate was processed.
	Err error
}

// Pool evaluates candidate request sets with a fixed number of workers.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count. Panics when workers < 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		panic("batch: worker count must be at least 1")
	}
	return &Pool{workers: workers}
}

// Evaluate optimizes every candidate and returns one Result per candidate, in
// candidate order. Cancelling the context stops feeding work; candidates not
// yet picked up report the context error. Results for candidates already being
// processed are still filled in.
func (p *Pool) Evaluate(ctx context.Context, candidates [][]int) []Result {
	results := make([]Result, len(candidates))
	for i, ids := range candidates {
		results[i] = Result{Index: i, IDs: ids}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				cfg, err := optimizer.Optimize(candidates[idx])
				results[idx] = Result{Index: idx, IDs: candidates[idx], Config: cfg, Err: err}
			}
		}()
	}

feed:
	for idx := range candidates {
		// Checked before the select so that an already-cancelled context never
		// feeds work, even when a worker is ready to receive.
		if ctx.Err() != nil {
			recordCancelled(results, idx, ctx.Err())
			break
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			recordCancelled(results, idx, ctx.Err())
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// recordCancelled marks every candidate from idx on with the context error.
func recordCancelled(results []Result, idx int, err error) {
	for i := idx; i < len(results); i++ {
		results[i].Err = err
	}
}

// Best returns the index of the successful result with the longest tray life.
// Ties prefer the configuration with more placements, then the lower index.
// ok is false when no candidate succeeded.
func Best(results []Result) (best int, ok bool) {
	best = -1
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if best < 0 {
			best = res.Index
			continue
		}
		winner := results[best].Config
		switch {
		case res.Config.TrayLife() > winner.TrayLife():
			best = res.Index
		case res.Config.TrayLife() == winner.TrayLife() &&
			res.Config.PlacementCount() > winner.PlacementCount():
			best = res.Index
		}
	}
	return best, best >= 0
}
