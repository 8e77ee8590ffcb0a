package notify

import (
	"context"
	"log/slog"
	"time"
)

type submitter interface {
	Submit(f func())
}

// Async hands delivery to a worker pool so callers never wait on slow
// transports. Delivery errors are logged.
type Async struct {
	pool    submitter
	next    Notifier
	timeout time.Duration
}

func NewAsync(pool submitter, next Notifier) *Async {
	return &Async{pool: pool, next: next, timeout: 10 * time.Second}
}

func (a *Async) Notify(ctx context.Context, n Notification) error {
	// detach from the caller's lifetime; the request may finish first
	base := context.WithoutCancel(ctx)
	a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(base, a.timeout)
		defer cancel()
		if err := a.next.Notify(ctx, n); err != nil {
			slog.Warn("notification delivery failed", "channel", n.Channel, "id", n.ID, "err", err)
		}
	})
	return nil
}
