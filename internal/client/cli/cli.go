package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/puapi/internal/client/auth"
	"github.com/iudanet/puapi/internal/client/iocli"
	"github.com/iudanet/puapi/internal/models"
	"github.com/iudanet/puapi/internal/validation"
)

//go:generate moq -out mock_provider_test.go . SessionProvider

// SessionProvider - провайдер с доступом к cookie и транспортной сессии
type SessionProvider interface {
	auth.Provider
	Cookies() []models.Cookie
	TransportSessionID(ctx context.Context) (string, error)
}

// ProviderFactory создает провайдер для введенных учетных данных
type ProviderFactory func(creds models.Credentials) (SessionProvider, error)

type Cli struct {
	io          iocli.IO
	newProvider ProviderFactory
	now         func() time.Time
}

func New(io iocli.IO, newProvider ProviderFactory) *Cli {
	return &Cli{
		io:          io,
		newProvider: newProvider,
		now:         time.Now,
	}
}

// ReadCredentials дополняет учетные данные из окружения вводом с терминала:
// 1. PUAPI_EMAIL / PUAPI_PASSWORD
// 2. Interactive prompt (fallback)
func (c *Cli) ReadCredentials(fromEnv models.Credentials) (models.Credentials, error) {
	creds := fromEnv

	if strings.TrimSpace(creds.Email) == "" {
		email, err := c.io.ReadInput("E-mail: ")
		if err != nil {
			return creds, fmt.Errorf("failed to read e-mail: %w", err)
		}
		creds.Email = strings.TrimSpace(email)
	}
	if err := validation.ValidateEmail(creds.Email); err != nil {
		return creds, fmt.Errorf("invalid e-mail: %w", err)
	}

	if creds.Password == "" {
		password, err := c.io.ReadPassword("Password: ")
		if err != nil {
			return creds, fmt.Errorf("failed to read password: %w", err)
		}
		creds.Password = password
	}
	if err := validation.ValidatePassword(creds.Password); err != nil {
		return creds, fmt.Errorf("invalid password: %w", err)
	}

	return creds, nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("Prosperous Universe session client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  puapi [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version          Show version information")
	c.io.Println("  --env-file PATH    Load environment variables from file (default: .env if present)")
	c.io.Println()
	c.io.Println("Credentials Priority (highest to lowest):")
	c.io.Println("  1. PUAPI_EMAIL / PUAPI_PASSWORD environment variables")
	c.io.Println("  2. Interactive prompt (fallback)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login              Authenticate and show the session profile and cookies")
	c.io.Println("  sid                Authenticate and fetch the realtime transport session id")
	c.io.Println()
	c.io.Println("Environment:")
	c.io.Println("  PUAPI_RETRIES, PUAPI_RETRY_DELAY, PUAPI_REQUEST_TIMEOUT")
	c.io.Println("  PUAPI_SESSIONS_URL, PUAPI_USERS_URL, PUAPI_EDGE_URL")
	c.io.Println("  PUAPI_LOG_LEVEL (debug|info|warn|error), PUAPI_LOG_FORMAT (text|json)")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  export PUAPI_EMAIL='pilot@example.com'")
	c.io.Println("  puapi login")
	c.io.Println("  PUAPI_LOG_LEVEL=debug puapi sid")
}
