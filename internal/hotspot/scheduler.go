package hotspot

import (
	"context"
	"log/slog"
	"time"
)

type runner interface {
	Run(ctx context.Context) error
}

// RunFunc adapts a function to the scheduler.
type RunFunc func(ctx context.Context) error

func (f RunFunc) Run(ctx context.Context) error { return f(ctx) }

// Schedule runs job immediately and then every interval until ctx is done.
// Failed runs are logged and wait for the next tick.
func Schedule(ctx context.Context, interval time.Duration, name string, job runner) {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	runOnce(ctx, name, job)
	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped", "job", name)
			return
		case <-tick.C:
			runOnce(ctx, name, job)
		}
	}
}

func runOnce(ctx context.Context, name string, job runner) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", name, "err", err)
		return
	}
	slog.Debug("scheduled job done", "job", name, "took", time.Since(start))
}

// Job adapts the refresher to Schedule.
func (f *Refresher) Job() RunFunc {
	return func(ctx context.Context) error {
		_, err := f.Run(ctx)
		return err
	}
}
