package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/middleware"
	tg "github.com/set-night/phonechat/internal/telegram"
)

const buyUsage = "Usage: /buy <phone id> <email> <phone number>\nExample: /buy %s you@example.com +1 555 0100"

func (h *Handler) handleLeadCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	h.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cq.ID})

	msg := cq.Message.Message
	if msg == nil {
		return
	}
	id, ok := tg.ParseLeadCallback(cq.Data)
	if !ok {
		return
	}

	h.reply(ctx, msg.Chat.ID, "Great choice! To have us call you about this phone, send:\n"+
		fmt.Sprintf("/buy %d <email> <phone number>", id))
}

func (h *Handler) handleBuy(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	user := middleware.GetUser(ctx)
	if user == nil {
		h.reply(ctx, chatID, unavailableText)
		return
	}

	fields := strings.Fields(commandArgs(update.Message.Text))
	if len(fields) < 3 {
		h.reply(ctx, chatID, fmt.Sprintf(buyUsage, "12"))
		return
	}
	cellPhoneID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || cellPhoneID < 1 {
		h.reply(ctx, chatID, fmt.Sprintf(buyUsage, "12"))
		return
	}

	var firstName string
	if update.Message.From != nil {
		firstName = update.Message.From.FirstName
	}
	name := displayName(user, firstName)
	if name == "" {
		name = "Telegram user"
	}

	res, err := h.leads.Submit(ctx, domain.NewContactInfo{
		UserID:      user.ID,
		CellPhoneID: cellPhoneID,
		Name:        name,
		Email:       fields[1],
		Phone:       strings.Join(fields[2:], " "),
	})
	switch {
	case err == nil:
		h.reply(ctx, chatID, "✅ "+res.Message)
	case errors.Is(err, domain.ErrCellPhoneNotFound):
		h.reply(ctx, chatID, "❌ There is no phone with that id.")
	case errors.Is(err, domain.ErrInvalidInput):
		h.reply(ctx, chatID, "❌ Please check the email address and phone number.\n"+fmt.Sprintf(buyUsage, fields[0]))
	default:
		slog.Error("failed to submit lead", "error", err, "user_id", user.ID, "cellphone_id", cellPhoneID)
		h.reply(ctx, chatID, unavailableText)
	}
}
