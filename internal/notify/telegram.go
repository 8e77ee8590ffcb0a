package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier forwards notifications on the selected channels to one chat.
type TelegramNotifier struct {
	bot      sender
	chatID   int64
	channels map[Channel]struct{}
}

// NewTelegram connects to the Bot API. Only the given channels are forwarded;
// with none given, only hotspot alerts are.
func NewTelegram(token string, chatID int64, channels ...Channel) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return newTelegram(bot, chatID, channels...), nil
}

func newTelegram(bot sender, chatID int64, channels ...Channel) *TelegramNotifier {
	if len(channels) == 0 {
		channels = []Channel{ChannelHotspots}
	}
	set := make(map[Channel]struct{}, len(channels))
	for _, c := range channels {
		set[c] = struct{}{}
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, channels: set}
}

func (t *TelegramNotifier) Notify(ctx context.Context, n Notification) error {
	if _, ok := t.channels[n.Channel]; !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, formatMessage(n))
	msg.DisableNotification = n.Ongoing
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func formatMessage(n Notification) string {
	if n.Text == "" {
		return n.Title
	}
	return n.Title + "\n" + n.Text
}
