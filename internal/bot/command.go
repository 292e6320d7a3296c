package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/models"
	"github.com/xaenox/owo-bot/internal/owoify"
	"go.uber.org/zap"
)

// commandLevels is the full set of commands the bot registers.
var commandLevels = map[string]owoify.Level{
	"owo": owoify.Owo,
	"uwu": owoify.Uwu,
	"uvu": owoify.Uvu,
}

// levelForCommand falls back to the mildest level for unknown names.
func levelForCommand(name string) owoify.Level {
	if level, ok := commandLevels[name]; ok {
		return level
	}
	return owoify.Owo
}

// CommandHandler replies to /owo, /uwu and /uvu with the transformed text.
type CommandHandler struct {
	deps *Deps
}

func NewCommandHandler(deps *Deps) *CommandHandler {
	return &CommandHandler{deps: deps}
}

func (h *CommandHandler) Handle(ctx context.Context, ev models.Event) (Outcome, error) {
	cmd, ok := ev.(models.CommandEvent)
	if !ok {
		return OutcomeIgnored, fmt.Errorf("command handler: %w: %T", ErrUnexpectedEvent, ev)
	}

	source, replyTo := resolveInput(cmd)
	if source == "" {
		return OutcomeSkipped, nil
	}

	level := levelForCommand(cmd.Command)
	msg := tgbotapi.NewMessage(cmd.ChatID, h.deps.Transform(source, level))
	msg.ReplyToMessageID = replyTo

	if _, err := h.deps.API.Send(msg); err != nil {
		h.deps.log(ctx).Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", cmd.ChatID),
			zap.Int("reply_to", replyTo),
			zap.String("command", cmd.Command))
		return OutcomeFailed, nil
	}

	return OutcomeReplied, nil
}

// resolveInput picks the text to transform and the message to reply to.
// A command sent in reply to a text message works on that message.
func resolveInput(cmd models.CommandEvent) (string, int) {
	if cmd.ReplyTo != nil && cmd.ReplyTo.IsText {
		return cmd.ReplyTo.Text, cmd.ReplyTo.MessageID
	}
	return cmd.Text, cmd.MessageID
}
