package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateNonPositiveWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Run Tests
// =============================================================================

func TestWorkerPool_Run(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numTasks = 100

	tasks := make([]func(), numTasks)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}

	if !pool.Run(tasks) {
		t.Fatal("Run() = false on a running pool")
	}
	if counter.Load() != numTasks {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_RunDisjointWrites(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	out := make([]int, 1000)
	spans := Partition(len(out), 7)
	tasks := make([]func(), len(spans))
	for i, s := range spans {
		tasks[i] = func() {
			for j := s.Lo; j < s.Hi; j++ {
				out[j] = j * 2
			}
		}
	}
	pool.Run(tasks)

	// Run is the barrier: every write is visible here without extra locking.
	for j, v := range out {
		if v != j*2 {
			t.Fatalf("out[%d] = %d, want %d", j, v, j*2)
		}
	}
}

func TestWorkerPool_RunEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if !pool.Run(nil) || !pool.Run([]func(){}) {
		t.Error("Run() with no tasks should succeed")
	}
}

func TestWorkerPool_RunSingleWorker(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var order []int
	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() { order = append(order, i) }
	}
	pool.Run(tasks)

	if len(order) != 50 {
		t.Fatalf("ran %d tasks, want 50", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("single worker ran task %d at position %d", v, i)
		}
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var fastCount, slowCount atomic.Int64

	tasks := make([]func(), 100)
	for i := range tasks {
		if i%4 == 0 {
			// All slow tasks land on worker 0's queue.
			tasks[i] = func() {
				time.Sleep(5 * time.Millisecond)
				slowCount.Add(1)
			}
		} else {
			tasks[i] = func() { fastCount.Add(1) }
		}
	}

	start := time.Now()
	pool.Run(tasks)
	elapsed := time.Since(start)

	if slowCount.Load() != 25 || fastCount.Load() != 75 {
		t.Errorf("slow = %d, fast = %d, want 25 and 75", slowCount.Load(), fastCount.Load())
	}
	t.Logf("Elapsed time: %v (idle workers steal worker 0's slow tasks)", elapsed)
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_RunAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	ran := false
	if pool.Run([]func(){func() { ran = true }}) {
		t.Error("Run() after Close = true, want false")
	}
	if ran {
		t.Error("task ran on a closed pool")
	}
}

func TestWorkerPool_CloseDuringRun(t *testing.T) {
	pool := NewWorkerPool(2)

	var counter atomic.Int64
	tasks := make([]func(), 200)
	for i := range tasks {
		tasks[i] = func() {
			time.Sleep(100 * time.Microsecond)
			counter.Add(1)
		}
	}

	var wg sync.WaitGroup
	var accepted atomic.Bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		accepted.Store(pool.Run(tasks))
	}()

	time.Sleep(time.Millisecond)
	pool.Close()
	wg.Wait()

	// A batch is either refused outright or run to completion.
	if accepted.Load() && counter.Load() != 200 {
		t.Errorf("accepted batch ran %d of 200 tasks", counter.Load())
	}
	if !accepted.Load() && counter.Load() != 0 {
		t.Errorf("refused batch ran %d tasks", counter.Load())
	}
}

func TestWorkerPool_ConcurrentRun(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks := make([]func(), 25)
			for i := range tasks {
				tasks[i] = func() { counter.Add(1) }
			}
			pool.Run(tasks)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		pool := NewWorkerPool(4)
		tasks := make([]func(), 100)
		for j := range tasks {
			tasks[j] = func() {}
		}
		pool.Run(tasks)
		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	// Allow for some variance (test framework goroutines, etc.)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}
