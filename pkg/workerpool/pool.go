package workerpool

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted jobs on a fixed number of goroutines
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	wg       sync.WaitGroup
	once     sync.Once
	closed   sync.Once
}

// New creates a pool with the given number of workers, runtime.NumCPU() if workers <= 0
func New(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start launches the workers. Calling it more than once has no effect.
func (wp *WorkerPool) Start() {
	wp.once.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
		wp.wg.Done()
	}
}

// Submit queues a job. It blocks while the queue is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has returned
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close stops the workers once the queue drains
func (wp *WorkerPool) Close() {
	wp.closed.Do(func() {
		close(wp.jobQueue)
	})
}

// Run starts a pool, runs fn(i) for every i in [0, n), and waits for all of them
func Run(workers, n int, fn func(i int)) {
	wp := New(workers)
	wp.Start()
	defer wp.Close()

	for i := 0; i < n; i++ {
		i := i
		wp.Submit(func() { fn(i) })
	}
	wp.Wait()
}
