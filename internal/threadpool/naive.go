package threadpool

import "sync"

// Naive is the Go analog of the original system's NaiveThreadPool: it
// keeps no worker goroutines and spawns a fresh one for every job. It
// exists as the trivial baseline implementation of Pool, useful for tests
// and for a server that wants concurrency without the bookkeeping of a
// bounded pool.
type Naive struct {
	wg sync.WaitGroup
}

var _ Pool = (*Naive)(nil)

// NewNaive constructs a Naive pool. The threads argument is accepted for
// symmetry with Fixed but otherwise ignored, since Naive spawns one
// goroutine per job regardless of configured width.
func NewNaive(_ uint) (*Naive, error) {
	return &Naive{}, nil
}

// Spawn immediately starts a new goroutine running job.
func (p *Naive) Spawn(job func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		job()
	}()
}

// Close waits for every spawned goroutine to finish.
func (p *Naive) Close() error {
	p.wg.Wait()
	return nil
}
