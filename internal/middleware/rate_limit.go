package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/config"
	"golang.org/x/time/rate"
)

// ChatLimiter keeps one token bucket per chat. Buckets idle for longer than
// ttl are dropped on the next Allow call after the sweep interval.
type ChatLimiter struct {
	mu        sync.Mutex
	limiters  map[int64]*chatBucket
	perMinute int
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type chatBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewChatLimiter(perMinute, burst int, ttl time.Duration) *ChatLimiter {
	return &ChatLimiter{
		limiters:  make(map[int64]*chatBucket),
		perMinute: perMinute,
		burst:     burst,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (l *ChatLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for id, b := range l.limiters {
			if now.Sub(b.lastSeen) > l.ttl {
				delete(l.limiters, id)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.limiters[chatID]
	if !ok {
		b = &chatBucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.burst)}
		l.limiters[chatID] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// RateLimit returns middleware that drops text messages from chats over their limit.
// Callbacks are never limited.
func RateLimit(cfg *config.Config) bot.Middleware {
	limiter := NewChatLimiter(cfg.BotRateLimit, config.RateLimitBurst, config.RateLimitIdleTTL)
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !limiter.Allow(chatID) {
				slog.Debug("rate limited", "chat_id", chatID)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many messages. Please wait a moment.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
