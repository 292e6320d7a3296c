package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/owoify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Settings are the startup options of the bot.
type Settings struct {
	Token            string
	APIEndpoint      string
	PollTimeout      int
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	Debug            bool
	RegisterCommands bool
	Inline           InlineOptions
}

var commandDescriptions = map[owoify.Level]string{
	owoify.Owo: "owoify your text or the message you reply to",
	owoify.Uwu: "like /owo, but more",
	owoify.Uvu: "like /uwu, but even more",
}

type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	settings   Settings
	logger     *zap.Logger
}

// New connects to the Bot API and registers the handlers. Creating the
// client calls getMe, which fails for a rejected token and caches the bot's
// username.
func New(settings Settings, transform TransformFunc, logger *zap.Logger) (*Bot, error) {
	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = defaultRequestTimeout
	}
	if settings.ShutdownTimeout <= 0 {
		settings.ShutdownTimeout = defaultShutdownTimeout
	}

	endpoint := settings.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	// Long polls are held open by Telegram for PollTimeout seconds, so the
	// client deadline has to cover that on top of the request itself.
	client := &http.Client{
		Timeout: time.Duration(settings.PollTimeout)*time.Second + settings.RequestTimeout,
	}

	api, err := tgbotapi.NewBotAPIWithClient(settings.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = settings.Debug

	if api.Self.UserName == "" {
		return nil, errors.New("failed to resolve bot username")
	}

	if transform == nil {
		transform = owoify.Owoify
	}

	deps := &Deps{
		API:       api,
		Username:  api.Self.UserName,
		Transform: transform,
		Logger:    logger,
		Inline:    settings.Inline,
	}

	return &Bot{
		api:        api,
		dispatcher: NewDispatcher(deps),
		settings:   settings,
		logger:     logger,
	}, nil
}

// Start long-polls for updates until ctx is canceled. Every update is handled
// on its own goroutine; on shutdown Start waits for those still running.
func (b *Bot) Start(ctx context.Context) error {
	// getUpdates is refused while a webhook is set, and tgbotapi would only
	// keep retrying it.
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	if b.settings.RegisterCommands {
		if err := b.setupCommands(); err != nil {
			b.logger.Warn("Failed to register bot commands", zap.Error(err))
		}
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.settings.PollTimeout

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Bot started",
		zap.String("username", b.api.Self.UserName),
		zap.Int64("bot_id", b.api.Self.ID))

	// In-flight handlers finish their reply even after shutdown begins.
	handlerCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Stopping bot, waiting for in-flight updates")
			b.drain(&g)
			return nil
		case update, ok := <-updates:
			if !ok {
				b.logger.Info("Updates channel closed")
				b.drain(&g)
				return nil
			}
			g.Go(func() error {
				b.dispatcher.Dispatch(handlerCtx, update)
				return nil
			})
		}
	}
}

// drain waits for running handlers, giving up after ShutdownTimeout.
func (b *Bot) drain(g *errgroup.Group) {
	done := make(chan struct{})
	go func() {
		g.Wait()
		close(done)
	}()

	timer := time.NewTimer(b.settings.ShutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		b.logger.Warn("Shutdown timeout reached, abandoning in-flight updates",
			zap.Duration("timeout", b.settings.ShutdownTimeout))
	}
}

// setupCommands publishes the command list shown in Telegram clients.
func (b *Bot) setupCommands() error {
	commands := make([]tgbotapi.BotCommand, 0, len(commandDescriptions))
	for _, level := range owoify.Levels() {
		commands = append(commands, tgbotapi.BotCommand{
			Command:     level.String(),
			Description: commandDescriptions[level],
		})
	}

	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("failed to set commands: %w", err)
	}
	return nil
}
