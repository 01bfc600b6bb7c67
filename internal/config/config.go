// Package config holds the two configuration layers of the application: the
// runtime Config read from the environment at startup, and the user Settings
// persisted per application name.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HEADLINES_LOG_LEVEL
const EnvPrefix = "HEADLINES"

// DefaultEnvFile is read, when present, before the environment
const DefaultEnvFile = ".env"

// Default values
const (
	DefaultAppName       = "headlines"
	DefaultAppID         = "io.github.ytget.headlines"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultNewsBaseURL   = "https://newsapi.org/v2"
	DefaultCountry       = "us"
	DefaultPageSize      = 20
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultWindowWidth   = 540
	DefaultWindowHeight  = 960
)

// MaxPageSize is the largest page newsapi.org serves
const MaxPageSize = 100

// Config is the runtime configuration assembled at startup
type Config struct {
	AppName       string        `mapstructure:"app_name"`
	AppID         string        `mapstructure:"app_id"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFormat     string        `mapstructure:"log_format"`
	NewsBaseURL   string        `mapstructure:"news_base_url"`
	Country       string        `mapstructure:"country"`
	PageSize      int           `mapstructure:"page_size"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	WindowWidth   float32       `mapstructure:"window_width"`
	WindowHeight  float32       `mapstructure:"window_height"`
	FontPath      string        `mapstructure:"font_path"`
}

// Load reads the optional env file (DefaultEnvFile when envFile is empty),
// applies defaults and HEADLINES_* overrides, and validates the result.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetDefault("app_name", DefaultAppName)
	v.SetDefault("app_id", DefaultAppID)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("news_base_url", DefaultNewsBaseURL)
	v.SetDefault("country", DefaultCountry)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("frame_interval", DefaultFrameInterval)
	v.SetDefault("window_width", DefaultWindowWidth)
	v.SetDefault("window_height", DefaultWindowHeight)
	v.SetDefault("font_path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.AppName = strings.TrimSpace(c.AppName)
	if c.AppName == "" {
		return fmt.Errorf("invalid app_name (must not be empty)")
	}
	if strings.ContainsAny(c.AppName, `/\`) {
		return fmt.Errorf("invalid app_name %q (must not contain path separators)", c.AppName)
	}
	if strings.TrimSpace(c.NewsBaseURL) == "" {
		return fmt.Errorf("invalid news_base_url (must not be empty)")
	}
	c.NewsBaseURL = strings.TrimRight(c.NewsBaseURL, "/")
	c.Country = strings.ToLower(strings.TrimSpace(c.Country))
	if c.Country == "" {
		return fmt.Errorf("invalid country (must not be empty)")
	}
	if c.PageSize < 1 {
		c.PageSize = 1
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid http_timeout (must be positive)")
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("invalid frame_interval (must be positive)")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
