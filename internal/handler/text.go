package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/middleware"
	tg "github.com/set-night/phonechat/internal/telegram"
)

const unavailableText = "Sorry, something went wrong. Please try again later."

// HandleText forwards a plain message to the assistant and replies with the
// generated text plus one button per recommended phone.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		h.reply(ctx, msg.Chat.ID, unavailableText)
		return
	}

	stopTyping := tg.StartTyping(ctx, h.api, msg.Chat.ID)
	res, err := h.chat.Chat(ctx, user.ID, msg.Text)
	stopTyping()
	if err != nil {
		slog.Error("chat failed", "error", err, "user_id", user.ID)
		h.reply(ctx, msg.Chat.ID, unavailableText)
		return
	}

	var markup models.ReplyMarkup
	if kb := tg.RecommendationKeyboard(res.Recommendations); kb != nil {
		markup = kb
	}
	if err := tg.SendLongMessage(ctx, h.api, msg.Chat.ID, res.Reply, markup); err != nil {
		slog.Error("failed to send reply", "error", err, "chat_id", msg.Chat.ID)
	}
}
