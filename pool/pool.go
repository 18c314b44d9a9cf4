// ABOUTME: Simple worker pool for parallelizing batch tasks
// ABOUTME: Submit-and-wait pattern used by the library tag scanner

package pool

import (
	"runtime"
	"sync"
)

// Pool manages a set of worker goroutines for parallel task execution.
type Pool struct {
	workers  int
	taskChan chan func()
	workerWg sync.WaitGroup // tracks worker goroutines lifetime
	taskWg   sync.WaitGroup // tracks submitted tasks completion
}

// New creates a pool for a batch of roughly batchSize tasks. Workers
// are capped at the batch size so a tiny batch does not spin up idle
// goroutines; the task channel holds the whole batch so Submit never
// blocks for one-shot work like a library scan.
func New(batchSize int) *Pool {
	numWorkers := runtime.NumCPU()
	if batchSize > 0 && batchSize < numWorkers {
		numWorkers = batchSize
	}

	p := &Pool{
		workers:  numWorkers,
		taskChan: make(chan func(), batchSize),
	}

	for range numWorkers {
		p.workerWg.Add(1)

		go func() {
			defer p.workerWg.Done()

			for task := range p.taskChan {
				task()
				p.taskWg.Done()
			}
		}()
	}

	return p
}

// Submit adds a task to the pool. Blocks if the task channel is full.
func (p *Pool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all submitted tasks have completed.
func (p *Pool) Wait() {
	p.taskWg.Wait()
}

// Close shuts down the pool and waits for all workers to exit.
func (p *Pool) Close() {
	close(p.taskChan)
	p.workerWg.Wait()
}
