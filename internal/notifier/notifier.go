package notifier

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers short operational messages to the crewing office,
// for example when a stand-back repayment had to be clamped or a loan
// write needed a referential repair.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// TelegramNotifier sends messages to a fixed chat via a Telegram bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *slog.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("notifier: init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("%s\n%s", subject, body))
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Failed to send telegram notification", "subject", subject, "error", err)
		return fmt.Errorf("notifier: send telegram message: %w", err)
	}
	return nil
}

// NoopNotifier discards all messages. Used when no bot token is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, subject, body string) error { return nil }
