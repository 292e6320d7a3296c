package bot

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/models"
	"github.com/xaenox/owo-bot/internal/owoify"
	"go.uber.org/zap"
)

// InlineHandler offers one article per level for every inline query.
type InlineHandler struct {
	deps *Deps
}

func NewInlineHandler(deps *Deps) *InlineHandler {
	return &InlineHandler{deps: deps}
}

func (h *InlineHandler) Handle(ctx context.Context, ev models.Event) (Outcome, error) {
	query, ok := ev.(models.InlineQueryEvent)
	if !ok {
		return OutcomeIgnored, fmt.Errorf("inline handler: %w: %T", ErrUnexpectedEvent, ev)
	}

	// Telegram expects an answer even for an empty query.
	results := make([]interface{}, 0, len(owoify.Levels()))
	if query.Query != "" {
		for _, level := range owoify.Levels() {
			results = append(results, h.article(query.Query, level))
		}
	}

	answer := tgbotapi.InlineConfig{
		InlineQueryID: query.QueryID,
		Results:       results,
		CacheTime:     h.deps.Inline.CacheTime,
		IsPersonal:    h.deps.Inline.IsPersonal,
	}

	if _, err := h.deps.API.Request(answer); err != nil {
		h.deps.log(ctx).Error("Failed to answer inline query",
			zap.Error(err),
			zap.String("inline_query_id", query.QueryID),
			zap.Int("results", len(results)))
		return OutcomeFailed, nil
	}

	return OutcomeAnswered, nil
}

func (h *InlineHandler) article(query string, level owoify.Level) tgbotapi.InlineQueryResultArticle {
	text := h.deps.Transform(query, level)
	article := tgbotapi.NewInlineQueryResultArticle(resultID(text, level), "owo level: "+level.String(), text)
	article.Description = text
	return article
}

// resultID is stable for the same text and level so Telegram can cache results.
func resultID(text string, level owoify.Level) string {
	return fmt.Sprintf("%s-%d", level, xxhash.Sum64String(text))
}
