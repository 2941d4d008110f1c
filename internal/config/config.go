package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/iudanet/puapi/internal/client/api"
	"github.com/iudanet/puapi/internal/client/auth"
	"github.com/iudanet/puapi/internal/models"
)

// Config - настройки клиента из переменных окружения PUAPI_*
type Config struct {
	// Учетные данные. Могут быть пустыми - CLI запросит недостающие
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// Политика повторов для каждого шага handshake
	Retries        int           `env:"RETRIES" envDefault:"3"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" envDefault:"3s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Адреса
	SessionsURL string `env:"SESSIONS_URL" envDefault:"https://sar.simulogics.games/api/sessions/"`
	UsersURL    string `env:"USERS_URL" envDefault:"https://sar.simulogics.games/api/pu/users/"`
	EdgeURL     string `env:"EDGE_URL" envDefault:"https://apex.prosperousuniverse.com/"`
	Origin      string `env:"ORIGIN" envDefault:"https://prosperousuniverse.com"`
	LandingPage string `env:"LANDING_PAGE" envDefault:"https://prosperousuniverse.com/"`

	// Домены синтезируемых cookie. Пустые значения выводятся из хоста EDGE_URL
	CookieDomain     string `env:"COOKIE_DOMAIN"`
	EdgeCookieDomain string `env:"EDGE_COOKIE_DOMAIN"`

	// Эмуляция браузера
	UserAgent      string `env:"USER_AGENT"`
	AcceptLanguage string `env:"ACCEPT_LANGUAGE" envDefault:"en"`

	// Логирование: debug, info, warn, error / text, json
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Prefix - общий префикс переменных
const Prefix = "PUAPI_"

// Load читает .env (если есть) и разбирает окружение.
// envFile может быть пустым; отсутствие .env по умолчанию - не ошибка.
func Load(envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}
	return Parse(nil)
}

// Parse собирает Config из environ, а если он nil - из окружения процесса
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

func loadDotEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}

// Sanitize приводит значения из окружения к допустимым
func (c *Config) Sanitize() {
	if c.Retries < 1 {
		c.Retries = 1
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = api.DefaultTimeout
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = api.DefaultUserAgent
	}
	c.Email = strings.TrimSpace(c.Email)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Credentials возвращает учетные данные из окружения
func (c Config) Credentials() models.Credentials {
	return models.Credentials{Email: c.Email, Password: c.Password}
}

// APIConfig - настройки HTTP транспорта
func (c Config) APIConfig(logger *slog.Logger) api.Config {
	return api.Config{
		Logger:         logger,
		SessionsURL:    c.SessionsURL,
		UsersURL:       c.UsersURL,
		EdgeURL:        c.EdgeURL,
		Origin:         c.Origin,
		LandingPage:    c.LandingPage,
		UserAgent:      c.UserAgent,
		AcceptLanguage: c.AcceptLanguage,
		Timeout:        c.RequestTimeout,
	}
}

// AuthOptions - настройки провайдера авторизации
func (c Config) AuthOptions(logger *slog.Logger) auth.Options {
	delay := c.RetryDelay
	if delay == 0 {
		// 0 в Options означает "по умолчанию", здесь - "без паузы"
		delay = -1
	}
	return auth.Options{
		Logger:           logger,
		Retries:          c.Retries,
		RetryDelay:       delay,
		CookieDomain:     c.CookieDomain,
		EdgeCookieDomain: c.EdgeCookieDomain,
	}
}

// Level переводит LogLevel в slog.Level, по умолчанию info
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger создает логгер по LogLevel и LogFormat
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
