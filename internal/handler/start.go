package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/middleware"
)

const welcomeText = "👋 Hi, %s!\n\n" +
	"I'm a cellphone shopping assistant. Tell me what you need: a budget like $500, " +
	"a favourite brand, storage, camera or battery life.\n\n" +
	"Commands:\n" +
	"/lang <code> : reply language, e.g. /lang es\n" +
	"/prefs <text> : remember your preferences\n" +
	"/buy <id> <email> <phone> : ask us to call you about a phone"

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		h.reply(ctx, update.Message.Chat.ID, unavailableText)
		return
	}

	var firstName string
	if update.Message.From != nil {
		firstName = update.Message.From.FirstName
	}
	name := displayName(user, firstName)
	if name == "" {
		name = "there"
	}
	h.reply(ctx, update.Message.Chat.ID, fmt.Sprintf(welcomeText, name))
}
