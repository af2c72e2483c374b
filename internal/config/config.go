package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty" validate:"required"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"20" validate:"gte=1"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"2" validate:"gte=0,ltefield=DBMaxConns"`

	// Text generation
	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	GeminiModel       string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash" validate:"required"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	// Conversation log
	ConversationWriteTimeout time.Duration `env:"CONVERSATION_WRITE_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// HTTP server
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8000" validate:"required"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	MaxImportSizeMB int64         `env:"MAX_IMPORT_SIZE_MB" envDefault:"5" validate:"gte=1,lte=100"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// Telegram channel, disabled when the token is empty
	BotToken           string `env:"BOT_TOKEN"`
	DropPendingUpdates bool   `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
	BotRateLimit       int    `env:"BOT_RATE_LIMIT_PER_MINUTE" envDefault:"20" validate:"gte=1"`

	// Telegram notifications
	NotifyChatID      int64 `env:"NOTIFY_CHAT_ID"`
	NotifyTopicLeads  int   `env:"NOTIFY_TOPIC_LEADS"`
	NotifyTopicErrors int   `env:"NOTIFY_TOPIC_ERRORS"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.AllowedOrigins = trimOrigins(cfg.AllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) GenerationEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

func (c *Config) BotEnabled() bool {
	return strings.TrimSpace(c.BotToken) != ""
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func trimOrigins(origins []string) []string {
	out := origins[:0]
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
