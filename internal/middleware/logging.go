package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Logging returns middleware that logs update processing time.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()
			src := sourceOf(update)

			next(ctx, b, update)

			slog.Debug("update processed",
				"type", src.kind,
				"chat_id", src.chatID,
				"user_id", userIDOf(src.from),
				"duration", time.Since(start),
			)
		}
	}
}

type updateSource struct {
	kind   string
	chatID int64
	from   *models.User
}

func sourceOf(update *models.Update) updateSource {
	switch {
	case update.Message != nil:
		return updateSource{kind: "message", chatID: update.Message.Chat.ID, from: update.Message.From}
	case update.CallbackQuery != nil:
		src := updateSource{kind: "callback_query", from: &update.CallbackQuery.From}
		if msg := update.CallbackQuery.Message.Message; msg != nil {
			src.chatID = msg.Chat.ID
		}
		return src
	default:
		return updateSource{kind: "unknown"}
	}
}

func userIDOf(u *models.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
