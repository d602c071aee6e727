package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking received*\n\n"+"Event: %s\n"+"Date: %s, %s–%s\n"+"Status: pending confirmation",
		b.EventName, b.Date, b.StartTime, b.EndTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Event: %s\n"+"Date: %s, %s–%s",
		b.EventName, b.Date, b.StartTime, b.EndTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Event: %s\n"+"Date: %s, %s–%s",
		b.EventName, b.Date, b.StartTime, b.EndTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingReminder(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Upcoming booking*\n\n"+"Event: %s\n"+"Starts %s at %s",
		b.EventName, b.Date, b.StartTime,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
