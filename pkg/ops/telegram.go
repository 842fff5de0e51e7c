// Package ops delivers engine diagnostics to an operations Telegram
// chat. Everything here is best effort: an unreachable bot never
// affects notification dispatch.
package ops

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/sirupsen/logrus"
)

// TelegramAlerter posts diagnostic messages to a fixed chat.
type TelegramAlerter struct {
	bot    *bot.Bot
	chatID int64
	logger *logrus.Logger
}

// NewTelegramAlerter builds an alerter, or returns nil when no token
// is configured so callers can wire it unconditionally.
func NewTelegramAlerter(token string, chatID int64, logger *logrus.Logger) *TelegramAlerter {
	if token == "" || chatID == 0 {
		return nil
	}
	b, err := bot.New(token)
	if err != nil {
		logger.Errorf("Failed to initialize ops Telegram bot: %v", err)
		return nil
	}
	return &TelegramAlerter{bot: b, chatID: chatID, logger: logger}
}

// Alert posts one message to the ops chat.
func (a *TelegramAlerter) Alert(ctx context.Context, message string) {
	if a == nil {
		return
	}
	_, err := a.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: a.chatID,
		Text:   "[notification-service] " + message,
	})
	if err != nil {
		a.logger.Errorf("Failed to send ops alert: %v", err)
	}
}
