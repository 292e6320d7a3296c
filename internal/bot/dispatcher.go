package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/xaenox/owo-bot/internal/models"
	"go.uber.org/zap"
)

// Dispatcher routes updates to the handler registered for their kind.
type Dispatcher struct {
	deps     *Deps
	commands map[string]Handler
	inline   Handler
}

// NewDispatcher registers the command handler for every known command and
// the inline handler for inline queries.
func NewDispatcher(deps *Deps) *Dispatcher {
	cmd := NewCommandHandler(deps)
	commands := make(map[string]Handler, len(commandLevels))
	for name := range commandLevels {
		commands[name] = cmd
	}

	return &Dispatcher{
		deps:     deps,
		commands: commands,
		inline:   NewInlineHandler(deps),
	}
}

// Dispatch handles a single update and reports what was done with it.
func (d *Dispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) Outcome {
	ev, ok := eventFromUpdate(update)
	if !ok {
		return OutcomeIgnored
	}

	handler := d.route(ev)
	if handler == nil {
		return OutcomeIgnored
	}

	logger := d.deps.Logger.With(
		zap.Int("update_id", update.UpdateID),
		zap.String("request_id", uuid.NewString()))
	ctx = withLogger(ctx, logger)

	outcome, err := handler.Handle(ctx, ev)
	if err != nil {
		logger.Error("Failed to handle update", zap.Error(err))
		return outcome
	}

	logger.Debug("Update handled", zap.Stringer("outcome", outcome))
	return outcome
}

func (d *Dispatcher) route(ev models.Event) Handler {
	switch ev := ev.(type) {
	case models.CommandEvent:
		// "/uwu@otherbot" in a group is meant for someone else.
		if ev.Mention != "" && !strings.EqualFold(ev.Mention, d.deps.Username) {
			return nil
		}
		return d.commands[ev.Command]
	case models.InlineQueryEvent:
		return d.inline
	}
	return nil
}

