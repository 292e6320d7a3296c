package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingToken is returned when BOT_TOKEN is not set.
var ErrMissingToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Inline   InlineConfig   `mapstructure:"inline"`
	Log      LogConfig      `mapstructure:"log"`
}

type TelegramConfig struct {
	Token            string        `mapstructure:"token"`
	APIEndpoint      string        `mapstructure:"api_endpoint"`
	PollTimeout      int           `mapstructure:"poll_timeout"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	Debug            bool          `mapstructure:"debug"`
	RegisterCommands bool          `mapstructure:"register_commands"`
}

type InlineConfig struct {
	CacheTime  int  `mapstructure:"cache_time"`
	IsPersonal bool `mapstructure:"is_personal"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"telegram.token":             "BOT_TOKEN",
	"telegram.api_endpoint":      "BOT_API_ENDPOINT",
	"telegram.poll_timeout":      "BOT_POLL_TIMEOUT",
	"telegram.request_timeout":   "BOT_REQUEST_TIMEOUT",
	"telegram.shutdown_timeout":  "BOT_SHUTDOWN_TIMEOUT",
	"telegram.debug":             "BOT_DEBUG",
	"telegram.register_commands": "BOT_REGISTER_COMMANDS",
	"inline.cache_time":          "INLINE_CACHE_TIME",
	"inline.is_personal":         "INLINE_IS_PERSONAL",
	"log.level":                  "LOG_LEVEL",
	"log.development":            "LOG_DEVELOPMENT",
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("telegram.api_endpoint", "")
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.request_timeout", 30*time.Second)
	v.SetDefault("telegram.shutdown_timeout", 10*time.Second)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.register_commands", true)
	v.SetDefault("inline.cache_time", 0)
	v.SetDefault("inline.is_personal", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return ErrMissingToken
	}
	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("invalid BOT_POLL_TIMEOUT %d: must not be negative", c.Telegram.PollTimeout)
	}
	if c.Telegram.RequestTimeout <= 0 {
		return fmt.Errorf("invalid BOT_REQUEST_TIMEOUT %s: must be positive", c.Telegram.RequestTimeout)
	}
	if c.Telegram.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid BOT_SHUTDOWN_TIMEOUT %s: must be positive", c.Telegram.ShutdownTimeout)
	}
	if c.Inline.CacheTime < 0 {
		return fmt.Errorf("invalid INLINE_CACHE_TIME %d: must not be negative", c.Inline.CacheTime)
	}
	return nil
}
