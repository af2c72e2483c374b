package config

import "time"

const (
	// Conversation history paging
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	// HTTP server
	ReadHeaderTimeout = 10 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096
	RateLimitBurst        = 3
	RateLimitIdleTTL      = 10 * time.Minute

	// Telegram notification send timeout
	NotifyTimeout = 10 * time.Second

	// Reply substituted for any text-generation failure
	GenerationFailureReply = "Sorry, I'm having trouble right now. Please try again. (Error: %s)"
)
