package worker

import (
	"log/slog"
	"sync"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
)

type Pool struct {
	wg   sync.WaitGroup
	jobs chan func()
}

func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan func(), 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
				run(job)
			}
		}()
	}
	return p
}

func run(job func()) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker panic", "err", rec)
		}
	}()
	job()
}

func (p *Pool) Submit(f func()) {
	p.jobs <- f
	metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
}

// Stop drains queued jobs and waits for the workers to exit.
func (p *Pool) Stop() { close(p.jobs); p.wg.Wait() }
