package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/models"
	"github.com/xaenox/owo-bot/internal/owoify"
	"go.uber.org/zap"
)

// ErrUnexpectedEvent is returned when a handler receives an event kind it
// was not registered for.
var ErrUnexpectedEvent = errors.New("unexpected event type")

// Outcome describes what a handler did with an event.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeSkipped
	OutcomeReplied
	OutcomeAnswered
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeReplied:
		return "replied"
	case OutcomeAnswered:
		return "answered"
	case OutcomeFailed:
		return "failed"
	default:
		return "ignored"
	}
}

// Handler processes a single event.
type Handler interface {
	Handle(ctx context.Context, ev models.Event) (Outcome, error)
}

// Sender is the subset of *tgbotapi.BotAPI the handlers need.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TransformFunc renders text at the given level.
type TransformFunc func(text string, level owoify.Level) string

// InlineOptions tune the answers sent to inline queries.
type InlineOptions struct {
	CacheTime  int
	IsPersonal bool
}

// Deps is everything the handlers share. It is built once at startup and is
// read-only afterwards.
type Deps struct {
	API       Sender
	Username  string
	Transform TransformFunc
	Logger    *zap.Logger
	Inline    InlineOptions
}

type loggerKey struct{}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// log returns the request scoped logger if there is one.
func (d *Deps) log(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return d.Logger
}
