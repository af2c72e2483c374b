package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	phonechat "github.com/set-night/phonechat"
	"github.com/set-night/phonechat/internal/config"
	"github.com/set-night/phonechat/internal/handler"
	"github.com/set-night/phonechat/internal/httpapi"
	"github.com/set-night/phonechat/internal/middleware"
	"github.com/set-night/phonechat/internal/repository"
	"github.com/set-night/phonechat/internal/repository/sqlc"
	"github.com/set-night/phonechat/internal/service"
	"github.com/set-night/phonechat/internal/telegram"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Setup structured logging; the level is raised or lowered once config is known
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: &level,
	}))
	slog.SetDefault(logger)

	if err := run(&level); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(level *slog.LevelVar) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level.Set(cfg.SlogLevel())

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, repository.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(phonechat.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	queries := sqlc.New(pool)

	// Text generation
	var gateway service.TextGenerator = service.UnavailableGenerator{}
	if cfg.GenerationEnabled() {
		gemini, err := service.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("init gemini: %w", err)
		}
		gateway = gemini
	} else {
		slog.Warn("GEMINI_API_KEY is not set, every chat reply will be the failure message")
	}

	userService := service.NewUserService(queries)
	catalogService := service.NewCatalogService(pool, queries)
	conversationService := service.NewConversationService(queries)

	// Telegram channel and notifications are optional
	var b *bot.Bot
	var notifier service.Notifier
	var opsNotifier *telegram.Notifier
	if cfg.BotEnabled() {
		reportPanic := func(err error, context string) {
			opsNotifier.NotifyError(err, context)
		}
		b, err = bot.New(cfg.BotToken, bot.WithMiddlewares(
			middleware.Recover(reportPanic),
			middleware.Logging(),
			middleware.RateLimit(cfg),
			middleware.UserLoader(userService),
		))
		if err != nil {
			return fmt.Errorf("create bot: %w", err)
		}
		me, err := b.GetMe(ctx)
		if err != nil {
			return fmt.Errorf("get bot info: %w", err)
		}
		slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)
		opsNotifier = telegram.NewNotifier(b, cfg)
		notifier = opsNotifier
	}

	chatService := service.NewChatService(service.ChatDeps{
		Users:         userService,
		Catalog:       catalogService,
		Conversations: conversationService,
		Generator:     service.NewGenerator(gateway, cfg.GenerationTimeout),
		Notifier:      notifier,
		WriteTimeout:  cfg.ConversationWriteTimeout,
	})
	leadService := service.NewLeadService(userService, catalogService, queries, notifier)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.Services{
		Users:         userService,
		Catalog:       catalogService,
		Conversations: conversationService,
		Chat:          chatService,
		Leads:         leadService,
	}, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		MaxImportSizeMB: cfg.MaxImportSizeMB,
	})
	srv := httpapi.NewServer(cfg.HTTPAddr, router, config.ReadHeaderTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if b != nil {
		h := handler.New(handler.Deps{
			API:   b,
			Chat:  chatService,
			Leads: leadService,
			Users: userService,
		})
		h.Register(b)

		if cfg.DropPendingUpdates {
			if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
				slog.Warn("failed to drop pending updates", "error", err)
			}
		}

		g.Go(func() error {
			slog.Info("starting bot")
			b.Start(gctx)
			slog.Info("bot stopped")
			return nil
		})
	}

	err = g.Wait()

	// Conversation writes outlive their requests; flush them before the pool closes
	chatService.Wait()
	slog.Info("shutdown complete")
	return err
}
