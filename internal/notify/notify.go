// Package notify delivers user-facing notifications on named channels.
package notify

import (
	"context"
	"errors"
	"log/slog"
)

type Channel string

const (
	// ChannelMileage carries the live status line of a tracking run.
	ChannelMileage Channel = "mileage"
	// ChannelHotspots carries red hotspot alerts.
	ChannelHotspots Channel = "hotspots"
)

const MileageStatusID = 1001

type Notification struct {
	ID      int     `json:"id"`
	Channel Channel `json:"channel"`
	Title   string  `json:"title"`
	Text    string  `json:"text"`
	Ongoing bool    `json:"ongoing"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the structured log. Status updates on
// the mileage channel are logged at debug level.
type LogNotifier struct {
	Log *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, n Notification) error {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}
	level := slog.LevelInfo
	if n.Channel == ChannelMileage {
		level = slog.LevelDebug
	}
	log.Log(ctx, level, "notification",
		"channel", n.Channel,
		"id", n.ID,
		"title", n.Title,
		"text", n.Text,
	)
	return nil
}

// Multi fans a notification out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, nt := range m {
		if err := nt.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops everything.
type Discard struct{}

func (Discard) Notify(context.Context, Notification) error { return nil }
