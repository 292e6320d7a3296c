package models

// Event is an incoming update the bot knows how to handle.
// It is implemented only by CommandEvent and InlineQueryEvent.
type Event interface {
	event()
}

// CommandEvent represents a bot command such as "/uwu some text"
type CommandEvent struct {
	Command   string          `json:"command"`
	Mention   string          `json:"mention,omitempty"`
	Text      string          `json:"text"`
	ReplyTo   *RepliedMessage `json:"reply_to,omitempty"`
	MessageID int             `json:"message_id"`
	ChatID    int64           `json:"chat_id"`
}

// RepliedMessage is the message a command was sent in reply to
type RepliedMessage struct {
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
	IsText    bool   `json:"is_text"`
}

// InlineQueryEvent represents a query typed after the bot's @username
type InlineQueryEvent struct {
	QueryID string `json:"query_id"`
	Query   string `json:"query"`
}

func (CommandEvent) event()     {}
func (InlineQueryEvent) event() {}
