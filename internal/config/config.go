package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const PlaceIDPlaceholder = "{placeId}"

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Postgres Postgres
	Redis    Redis
	Widget   Widget
	Alerts   Alerts
}

type App struct {
	Name     string `env:"APP_NAME"    envDefault:"feedback-widget"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL"   envDefault:"info"`
}

// Load читает переменные окружения. Файл .env необязателен.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Widget.CountdownSeed < 1 {
		errs = append(errs, errors.New("WIDGET_COUNTDOWN_SEED must be at least 1"))
	}

	if c.Widget.TickInterval <= 0 {
		errs = append(errs, errors.New("WIDGET_TICK_INTERVAL must be positive"))
	}

	if !strings.Contains(c.Widget.ReviewURLTemplate, PlaceIDPlaceholder) {
		errs = append(errs, fmt.Errorf("WIDGET_REVIEW_URL_TEMPLATE must contain %s", PlaceIDPlaceholder))
	}

	if c.Alerts.RatingThreshold < 1 || c.Alerts.RatingThreshold > 4 {
		errs = append(errs, errors.New("ALERTS_RATING_THRESHOLD must be between 1 and 4"))
	}

	if c.Alerts.Enabled() && c.Alerts.ChatID == 0 {
		errs = append(errs, errors.New("ALERTS_CHAT_ID is required when ALERTS_BOT_TOKEN is set"))
	}

	return errors.Join(errs...)
}
