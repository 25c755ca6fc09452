// Package parallel provides a small bounded worker pool for batch image
// processing. The dotgrid core itself is single-threaded; the pool is
// used by command-line tools to process many files at once.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted tasks on a fixed set of worker goroutines.
//
// Thread safety: Submit may be called from multiple goroutines, but
// Close must not race with Submit.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		tasks: make(chan func(), workers),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Submit queues a task for execution, blocking while all workers are
// busy and the queue is full.
func (p *Pool) Submit(task func()) {
	if task == nil {
		return
	}
	p.tasks <- task
}

// Close stops accepting tasks and waits for queued tasks to finish.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
