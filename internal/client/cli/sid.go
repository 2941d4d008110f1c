package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSID(ctx context.Context, provider SessionProvider) error {
	if _, err := provider.Authenticate(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sid, err := provider.TransportSessionID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get transport session: %w", err)
	}

	c.io.Println(sid)
	return nil
}
