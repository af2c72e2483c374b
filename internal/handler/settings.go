package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/middleware"
)

func (h *Handler) handleLang(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	user := middleware.GetUser(ctx)
	if user == nil {
		h.reply(ctx, chatID, unavailableText)
		return
	}

	lang := commandArgs(update.Message.Text)
	if lang == "" {
		h.reply(ctx, chatID, fmt.Sprintf("Current language: %s\nUsage: /lang <code>, e.g. /lang es", user.Language))
		return
	}

	if err := h.users.SetLanguage(ctx, user.ID, lang); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.reply(ctx, chatID, "That language code is too long.")
			return
		}
		slog.Error("failed to set language", "error", err, "user_id", user.ID)
		h.reply(ctx, chatID, unavailableText)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf("✅ I'll answer in %s from now on.", lang))
}

func (h *Handler) handlePrefs(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	user := middleware.GetUser(ctx)
	if user == nil {
		h.reply(ctx, chatID, unavailableText)
		return
	}

	prefs := commandArgs(update.Message.Text)
	if err := h.users.SetPreferences(ctx, user.ID, prefs); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.reply(ctx, chatID, "Your preferences are too long. Please shorten them.")
			return
		}
		slog.Error("failed to set preferences", "error", err, "user_id", user.ID)
		h.reply(ctx, chatID, unavailableText)
		return
	}

	if prefs == "" {
		h.reply(ctx, chatID, "🧹 Preferences cleared.")
		return
	}
	h.reply(ctx, chatID, "✅ Preferences saved.")
}
