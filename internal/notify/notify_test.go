package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type recorder struct {
	mu  sync.Mutex
	got []Notification
	err error
}

func (r *recorder) Notify(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return r.err
}

type inlinePool struct{}

func (inlinePool) Submit(f func()) { f() }

func TestMultiDeliversToAllAndJoinsErrors(t *testing.T) {
	a := &recorder{}
	b := &recorder{err: errors.New("down")}
	err := Multi{a, b}.Notify(context.Background(), Notification{ID: 1, Channel: ChannelHotspots})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("both notifiers should be called: %d %d", len(a.got), len(b.got))
	}
}

func TestAsyncSubmitsToPool(t *testing.T) {
	r := &recorder{err: errors.New("ignored")}
	a := NewAsync(inlinePool{}, r)
	if err := a.Notify(context.Background(), Notification{ID: 2000}); err != nil {
		t.Fatalf("async notify should not surface delivery errors: %v", err)
	}
	if len(r.got) != 1 || r.got[0].ID != 2000 {
		t.Fatalf("notification not delivered: %+v", r.got)
	}
}

type fakeBot struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, nil
}

func TestTelegramForwardsOnlySelectedChannels(t *testing.T) {
	bot := &fakeBot{}
	tn := newTelegram(bot, 42)

	ctx := context.Background()
	_ = tn.Notify(ctx, Notification{Channel: ChannelMileage, Title: "GigPulse", Text: "Tracking miles… 1.0 mi"})
	_ = tn.Notify(ctx, Notification{Channel: ChannelHotspots, Title: "🔥 Hotspot is red: Mall", Text: "UberEats • intensity 88"})

	if len(bot.sent) != 1 {
		t.Fatalf("expected only the hotspot alert forwarded, got %d", len(bot.sent))
	}
	if bot.sent[0].ChatID != 42 || bot.sent[0].Text != "🔥 Hotspot is red: Mall\nUberEats • intensity 88" {
		t.Fatalf("unexpected message: %+v", bot.sent[0])
	}
}
