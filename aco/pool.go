package aco

import "sync"

// workerPool runs jobs of type T on a fixed number of goroutines and collects
// results of type G. Results arrive in completion order; callers that need a
// stable order carry an index inside G.
type workerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// jobFunc processes a single job.
type jobFunc[T any, G any] func(worker int, job T) G

// newWorkerPool sizes both channels to jobQueueSize so AddJob never blocks
// when the caller enqueues at most that many jobs.
func newWorkerPool[T any, G any](numWorkers, jobQueueSize int) *workerPool[T, G] {
	return &workerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *workerPool[T, G]) worker(id int, fn jobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- fn(id, job)
	}
}

// Start launches the workers.
func (wp *workerPool[T, G]) Start(fn jobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, fn)
	}
}

// AddJob enqueues a job.
func (wp *workerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close signals that no more jobs will be added.
func (wp *workerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every worker has drained the queue, then closes results.
func (wp *workerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// CollectResults exposes the results channel; it is closed by Wait.
func (wp *workerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}
