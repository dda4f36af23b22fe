package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool errors.
var (
	// ErrWorkerPanic wraps a panic recovered from a task.
	ErrWorkerPanic = errors.New("parallel: worker panicked")

	// ErrPoolClosed is returned when work is submitted to a closed pool.
	ErrPoolClosed = errors.New("parallel: pool is closed")
)

// WorkerPool is a pool of goroutines for row-parallel image processing.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers can steal work from other workers when their own queue is empty.
// This helps balance load when some tasks are slower than others.
//
// A pool is meant to be scoped to one operation:
//
//	pool := parallel.NewWorkerPool(n)
//	defer pool.Close()
//	err := pool.ExecuteAll(work)
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// mu orders Close after any ExecuteAll that is still queuing:
	// queuing holds the read lock, Close takes the write lock before
	// closing done, so every queued task is drained by its worker.
	mu sync.RWMutex
}

// EffectiveWorkers resolves a requested worker count.
// Zero or negative means runtime.GOMAXPROCS(0).
func EffectiveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	workers = EffectiveWorkers(workers)

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					work()
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it to
// finish. It is the barrier of the pool: when it returns no task submitted
// by this call is still running.
//
// The first task error is returned. A panicking task is reported as
// ErrWorkerPanic. After a failure, tasks that have not started yet are
// skipped; tasks already running complete normally.
//
// Returns ErrPoolClosed if the pool was closed before the call. A Close
// racing with the call waits until all work is queued, and the queued
// work still runs.
func (p *WorkerPool) ExecuteAll(work []func() error) error {
	if len(work) == 0 {
		return nil
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return ErrPoolClosed
	}

	var (
		completionWG sync.WaitGroup
		failed       atomic.Bool
		errOnce      sync.Once
		firstErr     error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		failed.Store(true)
	}

	completionWG.Add(len(work))

	for i, fn := range work {
		workerID := i % p.workers

		wrappedWork := func() {
			defer completionWG.Done()
			if failed.Load() {
				return
			}
			if err := runTask(fn); err != nil {
				fail(err)
			}
		}

		p.workQueues[workerID] <- wrappedWork
	}
	p.mu.RUnlock()

	completionWG.Wait()
	return firstErr
}

// runTask calls fn, converting a panic into ErrWorkerPanic.
func runTask(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()
	return fn()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
