package bot

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/owo-bot/internal/owoify"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errSendFailed = errors.New("telegram unavailable")

// fakeSender records every call instead of talking to Telegram.
type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.MessageConfig
	requests []tgbotapi.InlineConfig
	err      error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if answer, ok := c.(tgbotapi.InlineConfig); ok {
		f.requests = append(f.requests, answer)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type transformCall struct {
	text  string
	level owoify.Level
}

// stubTransform tags the text with the level so tests can check the wiring
// without depending on the real rules.
type stubTransform struct {
	mu    sync.Mutex
	calls []transformCall
}

func (s *stubTransform) transform(text string, level owoify.Level) string {
	s.mu.Lock()
	s.calls = append(s.calls, transformCall{text: text, level: level})
	s.mu.Unlock()
	return level.String() + ":" + strings.ToUpper(text)
}

func newTestDeps(t *testing.T, sender *fakeSender) (*Deps, *stubTransform, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	stub := &stubTransform{}
	return &Deps{
		API:       sender,
		Username:  "owo_test_bot",
		Transform: stub.transform,
		Logger:    zap.New(core),
	}, stub, logs
}
