// Package worker surveys FEN positions on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules/internal/engine"
)

// WorkItem is one position to survey; Index is its place in the input.
type WorkItem struct {
	FEN   string
	Index int
}

// ProcessResult carries the survey of one item, or the error that stopped it.
type ProcessResult struct {
	FEN    string
	Index  int
	Survey engine.Survey
	Error  error
}

// ProcessFunc turns a work item into its result.
type ProcessFunc func(item WorkItem) ProcessResult

// SurveyFunc parses each item's FEN and surveys it under rules. Every item
// gets its own board.
func SurveyFunc(rules engine.RuleSet) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{FEN: item.FEN, Index: item.Index}
		pos, err := engine.ParseFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}
		result.Survey, result.Error = engine.SurveyPosition(pos, rules)
		return result
	}
}

// Pool fans work items out to its workers. Results arrive in completion
// order on Results.
type Pool struct {
	workers int
	queue   int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines; values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets how many items and results may wait in the queues;
// values below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queue = size
		}
	}
}

// NewPoolWithOptions creates a pool running process. It defaults to one
// worker and queues of ten.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, queue: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queue)
	p.results = make(chan ProcessResult, p.queue)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// Queued items are drained unprocessed after Stop.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results is closed once Close has returned.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// SurveyAll starts the pool, surveys every FEN and returns the results in
// input order. The pool cannot be reused afterwards.
func (p *Pool) SurveyAll(fens []string) []ProcessResult {
	p.Start()
	go func() {
		for i, fen := range fens {
			p.Submit(WorkItem{FEN: fen, Index: i})
		}
		p.Close()
	}()

	ordered := make([]ProcessResult, len(fens))
	for res := range p.results {
		ordered[res.Index] = res
	}
	return ordered
}
