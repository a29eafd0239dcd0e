package threadpool

import "sync"

// Fixed is a bounded worker-pool implementation of Pool: a fixed number of
// long-lived goroutines drain a shared job queue, giving the server a
// concurrency ceiling instead of Naive's one-goroutine-per-connection
// behavior. This is the concrete step §9's "concurrency upgrade path"
// design note anticipates a multi-threaded server wanting.
type Fixed struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

var _ Pool = (*Fixed)(nil)

// NewFixed spawns the given number of worker goroutines, each pulling jobs
// off a shared unbuffered channel until Close is called.
func NewFixed(threads uint) (*Fixed, error) {
	if threads == 0 {
		threads = 1
	}

	p := &Fixed{jobs: make(chan func())}
	p.wg.Add(int(threads))

	for i := uint(0); i < threads; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}

	return p, nil
}

// Spawn enqueues job for the next free worker to run.
func (p *Fixed) Spawn(job func()) {
	p.jobs <- job
}

// Close stops accepting new jobs and waits for every worker to drain the
// queue and exit.
func (p *Fixed) Close() error {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
	return nil
}
