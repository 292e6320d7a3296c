package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/models"
)

// eventFromUpdate converts a raw update into an Event. Updates the bot has no
// handler for report false.
func eventFromUpdate(update tgbotapi.Update) (models.Event, bool) {
	if q := update.InlineQuery; q != nil {
		return models.InlineQueryEvent{
			QueryID: q.ID,
			Query:   q.Query,
		}, true
	}

	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return nil, false
	}

	ev := models.CommandEvent{
		Command:   msg.Command(),
		Mention:   mentionOf(msg),
		Text:      msg.CommandArguments(),
		MessageID: msg.MessageID,
	}
	if msg.Chat != nil {
		ev.ChatID = msg.Chat.ID
	}
	if reply := msg.ReplyToMessage; reply != nil {
		ev.ReplyTo = &models.RepliedMessage{
			MessageID: reply.MessageID,
			Text:      reply.Text,
			IsText:    reply.Text != "",
		}
	}

	return ev, true
}

// mentionOf returns the bot name in "/cmd@name", or "" when there is none.
func mentionOf(msg *tgbotapi.Message) string {
	_, name, found := strings.Cut(msg.CommandWithAt(), "@")
	if !found {
		return ""
	}
	return name
}
