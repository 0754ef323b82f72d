package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Reply  ReplyConfig  `mapstructure:"reply"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Screen ScreenConfig `mapstructure:"screen"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReplyConfig struct {
	Delay time.Duration `mapstructure:"delay"`
	// Responder is "canned" or "openai".
	Responder string `mapstructure:"responder"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// ScreenConfig is the viewport the overlay layout is computed against.
type ScreenConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

const (
	ResponderCanned = "canned"
	ResponderOpenAI = "openai"
)

// LoadConfig reads path when it exists and layers environment variables
// prefixed with ASTROCHAT_ on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("reply.delay", "2s")
	v.SetDefault("reply.responder", ResponderCanned)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 150)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("screen.width", 375)
	v.SetDefault("screen.height", 812)

	// Enable environment variable support
	v.SetEnvPrefix("astrochat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" && config.OpenAI.APIKey == "" {
		config.OpenAI.APIKey = apiKey
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Reply.Responder {
	case ResponderCanned:
	case ResponderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("reply.responder %q needs openai.api_key or OPENAI_API_KEY", ResponderOpenAI)
		}
	default:
		return fmt.Errorf("unknown reply.responder %q", c.Reply.Responder)
	}
	if c.Reply.Delay < 0 {
		return fmt.Errorf("reply.delay must not be negative, got %s", c.Reply.Delay)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}
	return nil
}
