package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/domain"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the user loaded by UserLoader.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, u)
}

type userFinder interface {
	FindOrCreateByTelegramID(ctx context.Context, telegramID int64, firstName, languageCode string) (*domain.User, bool, error)
}

// UserLoader returns middleware that registers the sender on first contact
// and puts the user into the context.
func UserLoader(users userFinder) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			from := sourceOf(update).from
			if from == nil || from.IsBot {
				next(ctx, b, update)
				return
			}

			user, created, err := users.FindOrCreateByTelegramID(ctx, from.ID, from.FirstName, from.LanguageCode)
			if err != nil {
				slog.Error("failed to load user", "error", err, "telegram_id", from.ID)
			} else {
				if created {
					slog.Info("user registered", "user_id", user.ID, "telegram_id", from.ID)
				}
				ctx = WithUser(ctx, user)
			}

			next(ctx, b, update)
		}
	}
}
