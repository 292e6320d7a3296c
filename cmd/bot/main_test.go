package main

import (
	"testing"

	"github.com/xaenox/owo-bot/pkg/config"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	logger, err = newLogger(config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected info level to be disabled")
	}

	if _, err := newLogger(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
