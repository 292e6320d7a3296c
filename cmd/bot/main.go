package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/bot"
	"github.com/xaenox/owo-bot/internal/owoify"
	"github.com/xaenox/owo-bot/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// No logger yet, so build a default one just to report this.
		logger, _ := zap.NewProduction()
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize logger
	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := tgbotapi.SetLogger(zap.NewStdLog(logger.Named("tgbotapi"))); err != nil {
		logger.Warn("Failed to set telegram client logger", zap.Error(err))
	}

	// Initialize bot
	logger.Info("Creating bot")
	b, err := bot.New(bot.Settings{
		Token:            cfg.Telegram.Token,
		APIEndpoint:      cfg.Telegram.APIEndpoint,
		PollTimeout:      cfg.Telegram.PollTimeout,
		RequestTimeout:   cfg.Telegram.RequestTimeout,
		ShutdownTimeout:  cfg.Telegram.ShutdownTimeout,
		Debug:            cfg.Telegram.Debug,
		RegisterCommands: cfg.Telegram.RegisterCommands,
		Inline: bot.InlineOptions{
			CacheTime:  cfg.Inline.CacheTime,
			IsPersonal: cfg.Inline.IsPersonal,
		},
	}, owoify.Owoify, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process instead of waiting for the drain.
		<-ctx.Done()
		stop()
	}()

	// Start the bot
	if err := b.Start(ctx); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}
