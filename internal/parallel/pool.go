// Package parallel provides the worker pool and range partitioning used to
// convert fields to pixel buffers on all available cores.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines executing batches of tasks.
//
// Each worker owns a queue. Run deals tasks round-robin onto the queues and
// idle workers steal from their neighbours, so a slow task does not hold
// back the rest of a batch.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds one task queue per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	wg sync.WaitGroup

	// mu orders Close after any batch that is still being queued, so no
	// task lands in a queue whose worker has already exited.
	mu sync.RWMutex

	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for tasks.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return

		case task := <-own:
			task()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case task := <-own:
				task()
			}
		}
	}
}

// drain runs whatever is left in a queue.
func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// Run executes every task and blocks until all of them have returned.
//
// Tasks run concurrently and in no particular order. Run is the only
// synchronization point: when it returns, every write made by a task is
// visible to the caller.
//
// Run reports false, without running anything, if the pool has been closed.
// A batch that was accepted always runs to completion, even if Close is
// called while it is in flight.
func (p *WorkerPool) Run(tasks []func()) bool {
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return false
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			task()
		}
	}
	p.mu.RUnlock()

	wg.Wait()
	return true
}

// Close stops the pool after the queued tasks have run.
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

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
