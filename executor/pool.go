// Package executor models an N-worker event-loop pool exposing a
// round-robin executor handle. Transport and listener code only depend
// on the Executor/Pool contract below; this package supplies one
// concrete goroutine-backed implementation so the toolkit is runnable
// standalone.
//
// Each Executor serializes the closures posted to it onto a single
// goroutine, giving connections pinned to that Executor the same
// no-intra-connection-locking property a single-threaded event loop
// provides.
package executor

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Executor is a single serialized task queue. Post never blocks the caller
// waiting for the task to run; tasks run strictly in submission order.
type Executor interface {
	// Post schedules fn to run on this executor's worker goroutine.
	// Post after Stop silently drops fn.
	Post(fn func())
}

// Pool is a fixed-size set of Executors handed out round robin.
type Pool interface {
	// Next returns the next Executor in round-robin order.
	Next() Executor

	// Run starts all worker goroutines. Safe to call once.
	Run()

	// Stop signals every worker to drain its queue and exit, then blocks
	// until all workers have returned. Safe to call once.
	Stop()
}

type worker struct {
	tasks chan func()
	done  chan struct{}
}

func (w *worker) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case w.tasks <- fn:
	case <-w.done:
	}
}

func (w *worker) loop(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case fn := <-w.tasks:
			fn()
		case <-w.done:
			// drain remaining queued tasks before exiting
			for {
				select {
				case fn := <-w.tasks:
					fn()
				default:
					return
				}
			}
		}
	}
}

type pool struct {
	workers []*worker
	next    uint64
	wg      sync.WaitGroup
	once    sync.Once
	stopped chan struct{}
}

// New builds a Pool of n workers. n <= 0 defaults to runtime.NumCPU().
func New(n int) Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &pool{
		workers: make([]*worker, n),
		stopped: make(chan struct{}),
	}
	for i := range p.workers {
		p.workers[i] = &worker{
			tasks: make(chan func(), 256),
			done:  p.stopped,
		}
	}
	return p
}

func (p *pool) Run() {
	for _, w := range p.workers {
		p.wg.Add(1)
		go w.loop(&p.wg)
	}
}

func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.stopped)
	})
	p.wg.Wait()
}

func (p *pool) Next() Executor {
	i := atomic.AddUint64(&p.next, 1)
	return p.workers[i%uint64(len(p.workers))]
}

// RunOn blocks until fn has run on ex, returning fn's error. Useful for
// synchronous setup paths (e.g. binding a listener) that still want to run
// on a specific executor's goroutine.
func RunOn(ctx context.Context, ex Executor, fn func() error) error {
	done := make(chan error, 1)
	ex.Post(func() {
		done <- fn()
	})
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
