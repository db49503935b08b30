// Package worker provides a worker pool for splitting move-tree counts
// across goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Index    int             // Position in the submission order
	Position *chess.Position // Owned by the worker; never shared
	Turn     chess.Colour    // Side to move in Position
	Move     chess.Move      // Root move to play before counting
	Depth    int             // Plies below the root move
}

// ProcessResult is the count for one WorkItem.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a shared work channel.
// Once stopped, queued items are drained without being counted.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs process on each submitted item.
// Default: 1 worker, buffer size of 64.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 64,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. A cancelled ctx stops the pool.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, p.Stop)
		go func() {
			p.wg.Wait()
			stop()
		}()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers, and closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of counted items. It is closed by Close.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
