package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the console.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http" envPrefix:"HTTP_"`
	Backend   BackendConfig   `yaml:"backend" envPrefix:"BACKEND_"`
	Models    ModelsConfig    `yaml:"models" envPrefix:"MODELS_"`
	Presenter PresenterConfig `yaml:"presenter" envPrefix:"PRESENTER_"`
}

// HTTPConfig controls the console server.
type HTTPConfig struct {
	Address        string          `yaml:"address" env:"ADDRESS"`
	ReadTimeout    time.Duration   `yaml:"readTimeout" env:"READ_TIMEOUT"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout" env:"WRITE_TIMEOUT"`
	AllowedOrigins []string        `yaml:"allowedOrigins" env:"ALLOWED_ORIGINS"`
	RateLimit      RateLimitConfig `yaml:"rateLimit" envPrefix:"RATE_LIMIT_"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled" env:"ENABLED"`
	RequestsPerMinute int  `yaml:"requestsPerMinute" env:"RPM"`
	Burst             int  `yaml:"burst" env:"BURST"`
}

// BackendConfig points at the model-serving summarization service.
type BackendConfig struct {
	BaseURL       string        `yaml:"baseUrl" env:"BASE_URL"`
	SummarizePath string        `yaml:"summarizePath" env:"SUMMARIZE_PATH"`
	HealthPath    string        `yaml:"healthPath" env:"HEALTH_PATH"`
	Timeout       time.Duration `yaml:"timeout" env:"TIMEOUT"`
	HealthTimeout time.Duration `yaml:"healthTimeout" env:"HEALTH_TIMEOUT"`
}

// ModelsConfig lists the selectable models and which of them are slow.
type ModelsConfig struct {
	Default       string   `yaml:"default" env:"DEFAULT"`
	Available     []string `yaml:"available" env:"AVAILABLE"`
	Slow          []string `yaml:"slow" env:"SLOW"`
	DefaultLength string   `yaml:"defaultLength" env:"DEFAULT_LENGTH"`
}

// PresenterConfig tunes result presentation.
type PresenterConfig struct {
	ToastDuration time.Duration `yaml:"toastDuration" env:"TOAST_DURATION"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 600,
				Burst:             60,
			},
		},
		Backend: BackendConfig{
			BaseURL:       "http://localhost:8000",
			SummarizePath: "/api/v1/summarize",
			HealthPath:    "/health",
			Timeout:       90 * time.Second,
			HealthTimeout: 3 * time.Second,
		},
		Models: ModelsConfig{
			Default:       "distilbart",
			Available:     []string{"auto", "distilbart", "t5-small", "pegasus", "bart-large"},
			Slow:          []string{"pegasus", "bart-large"},
			DefaultLength: "medium",
		},
		Presenter: PresenterConfig{
			ToastDuration: 2 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("backend.baseUrl cannot be empty")
	}
	if !strings.HasPrefix(c.Backend.SummarizePath, "/") {
		return errors.New("backend.summarizePath must start with /")
	}
	if !strings.HasPrefix(c.Backend.HealthPath, "/") {
		return errors.New("backend.healthPath must start with /")
	}
	if c.Backend.Timeout <= 0 {
		return errors.New("backend.timeout must be positive")
	}
	if c.Backend.HealthTimeout <= 0 {
		return errors.New("backend.healthTimeout must be positive")
	}
	if len(c.Models.Available) == 0 {
		return errors.New("models.available cannot be empty")
	}
	if !slices.Contains(c.Models.Available, c.Models.Default) {
		return fmt.Errorf("models.default %q is not listed in models.available", c.Models.Default)
	}
	for _, slow := range c.Models.Slow {
		if !slices.Contains(c.Models.Available, slow) {
			return fmt.Errorf("models.slow entry %q is not listed in models.available", slow)
		}
	}
	switch c.Models.DefaultLength {
	case "short", "medium", "long":
	default:
		return fmt.Errorf("models.defaultLength %q must be short, medium or long", c.Models.DefaultLength)
	}
	if c.Presenter.ToastDuration <= 0 {
		return errors.New("presenter.toastDuration must be positive")
	}
	return nil
}
