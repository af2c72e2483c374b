package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	tg "github.com/set-night/phonechat/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register(b *bot.Bot) {
	// Commands
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/lang", bot.MatchTypePrefix, h.handleLang)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/prefs", bot.MatchTypePrefix, h.handlePrefs)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/buy", bot.MatchTypePrefix, h.handleBuy)

	// Callbacks
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.LeadCallbackPrefix, bot.MatchTypePrefix, h.handleLeadCallback)

	// Everything else that is not a command goes to the assistant
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || strings.HasPrefix(update.Message.Text, "/") {
			return
		}
		h.HandleText(ctx, b, update)
	})
}
