// Package handler implements the Telegram chat channel.
package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/service"
	tg "github.com/set-night/phonechat/internal/telegram"
)

// API is the subset of *bot.Bot the handlers talk to.
type API interface {
	tg.MessageSender
	tg.ChatActionSender
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

type chatter interface {
	Chat(ctx context.Context, userID int64, message string) (*service.ChatResult, error)
}

type leadSubmitter interface {
	Submit(ctx context.Context, in domain.NewContactInfo) (*service.LeadResult, error)
}

type userSettings interface {
	SetLanguage(ctx context.Context, userID int64, language string) error
	SetPreferences(ctx context.Context, userID int64, preferences string) error
}

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	api   API
	chat  chatter
	leads leadSubmitter
	users userSettings
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	API   API
	Chat  chatter
	Leads leadSubmitter
	Users userSettings
}

func New(deps Deps) *Handler {
	return &Handler{
		api:   deps.API,
		chat:  deps.Chat,
		leads: deps.Leads,
		users: deps.Users,
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	h.api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}

// commandArgs returns the text after the command word, e.g. "de" for "/lang de".
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

func displayName(user *domain.User, fallback string) string {
	if user != nil && user.Name != nil && *user.Name != "" {
		return *user.Name
	}
	return fallback
}
