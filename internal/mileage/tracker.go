// Package mileage accumulates distance driven between consecutive location
// fixes while a tracking run is open, and writes one summary record when the
// run stops.
package mileage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/notify"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrNotTracking = errors.New("mileage tracking is not running")
	ErrInvalidFix  = errors.New("fix is not a valid coordinate")
)

const statusTitle = "GigPulse"

// Status is a snapshot of the tracker.
type Status struct {
	Tracking  bool      `json:"tracking"`
	SessionID string    `json:"session_id,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
	Miles     float64   `json:"miles"`
	Fixes     int       `json:"fixes"`
	Line      string    `json:"status_line"`
}

type run struct {
	id      string
	started time.Time
	last    *Fix
	miles   float64
	fixes   int
}

// Tracker holds at most one open run.
type Tracker struct {
	mu     sync.Mutex
	cur    *run
	repo   repo.Mileage
	notify notify.Notifier
	now    func() time.Time
	print  *message.Printer
}

func NewTracker(r repo.Mileage, n notify.Notifier) *Tracker {
	if n == nil {
		n = notify.Discard{}
	}
	return &Tracker{
		repo:   r,
		notify: n,
		now:    func() time.Time { return time.Now().UTC() },
		print:  message.NewPrinter(language.English),
	}
}

// Start opens a run. Starting while a run is open returns the open run.
func (t *Tracker) Start(ctx context.Context) Status {
	t.mu.Lock()
	if t.cur != nil {
		st := t.statusLocked()
		t.mu.Unlock()
		return st
	}
	t.cur = &run{id: uuid.NewString(), started: t.now()}
	st := t.statusLocked()
	t.mu.Unlock()

	metrics.MileageActive.Set(1)
	slog.Info("mileage tracking started", "session", st.SessionID)
	t.publish(ctx, st.Line)
	return st
}

// Fix adds the distance from the previous fix to the running total. The
// first fix of a run only records the position. Invalid coordinates are
// rejected and leave the run untouched.
func (t *Tracker) Fix(ctx context.Context, f Fix) (Status, error) {
	t.mu.Lock()
	if t.cur == nil {
		t.mu.Unlock()
		return Status{}, ErrNotTracking
	}
	if !f.Valid() {
		t.mu.Unlock()
		return Status{}, ErrInvalidFix
	}
	r := t.cur
	moved := r.last != nil
	if moved {
		r.miles += MetersToMiles(DistanceMeters(*r.last, f))
	}
	last := f
	r.last = &last
	r.fixes++
	st := t.statusLocked()
	t.mu.Unlock()

	if moved {
		t.publish(ctx, st.Line)
	}
	return st, nil
}

// Stop closes the open run and persists its summary. Fixes arriving after the
// run is detached get ErrNotTracking.
func (t *Tracker) Stop(ctx context.Context) (models.MileageEvent, error) {
	t.mu.Lock()
	r := t.cur
	t.cur = nil
	t.mu.Unlock()
	if r == nil {
		return models.MileageEvent{}, ErrNotTracking
	}
	metrics.MileageActive.Set(0)

	ev := models.MileageEvent{StartedAt: r.started, EndedAt: t.now(), Miles: r.miles}
	saved, err := t.repo.Insert(ctx, ev)
	if err != nil {
		slog.Error("mileage persist", "session", r.id, "miles", r.miles, "err", err)
		return ev, fmt.Errorf("persist mileage run: %w", err)
	}
	metrics.RecordsCreated.WithLabelValues("mileage").Inc()
	metrics.MilesTracked.Add(saved.Miles)
	slog.Info("mileage tracking stopped", "session", r.id, "miles", saved.Miles, "fixes", r.fixes)
	return saved, nil
}

func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

func (t *Tracker) statusLocked() Status {
	if t.cur == nil {
		return Status{Line: "Not tracking"}
	}
	return Status{
		Tracking:  true,
		SessionID: t.cur.id,
		StartedAt: t.cur.started,
		Miles:     t.cur.miles,
		Fixes:     t.cur.fixes,
		Line:      t.print.Sprintf("Tracking miles… %.1f mi", t.cur.miles),
	}
}

func (t *Tracker) publish(ctx context.Context, line string) {
	err := t.notify.Notify(ctx, notify.Notification{
		ID:      notify.MileageStatusID,
		Channel: notify.ChannelMileage,
		Title:   statusTitle,
		Text:    line,
		Ongoing: true,
	})
	if err != nil {
		slog.Warn("mileage status notification", "err", err)
	}
}
