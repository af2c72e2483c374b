package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// PanicReporter receives a recovered handler panic. The ops notifier's
// NotifyError has this shape.
type PanicReporter func(err error, context string)

// Recover returns middleware that recovers from panics in bot handlers,
// logs them with the update that caused them and forwards them to report
// when it is non-nil.
func Recover(report PanicReporter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				src := sourceOf(update)
				slog.Error("panic recovered in bot handler",
					"panic", r,
					"update_id", update.ID,
					"type", src.kind,
					"chat_id", src.chatID,
					"stack", string(debug.Stack()),
				)
				if report != nil {
					report(fmt.Errorf("panic: %v", r),
						fmt.Sprintf("%s update %d in chat %d", src.kind, update.ID, src.chatID))
				}
			}()
			next(ctx, b, update)
		}
	}
}
