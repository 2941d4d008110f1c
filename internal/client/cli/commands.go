package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/puapi/internal/models"
)

// ErrUnknownCommand - команда не поддерживается
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду. Учетные данные из окружения дополняются вводом с терминала.
func (c *Cli) Run(ctx context.Context, command string, fromEnv models.Credentials) error {
	switch command {
	case "login", "sid":
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	creds, err := c.ReadCredentials(fromEnv)
	if err != nil {
		return err
	}

	provider, err := c.newProvider(creds)
	if err != nil {
		return fmt.Errorf("failed to create auth provider: %w", err)
	}

	if command == "sid" {
		return c.runSID(ctx, provider)
	}
	return c.runLogin(ctx, provider)
}
