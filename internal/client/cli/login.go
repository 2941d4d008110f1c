package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context, provider SessionProvider) error {
	c.io.Println("=== Login ===")
	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := provider.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Player:        %s\n", user.DisplayName)
	c.io.Printf("Player ID:     %s\n", user.PlayerID)
	c.io.Printf("Subscription:  %s\n", valueOr(user.SubscriptionLevel, "none"))
	if !user.SubscriptionExpiry.IsNull() {
		c.io.Printf("Subscr. until: %s\n", user.SubscriptionExpiry)
	}
	if user.HighestTier != "" {
		c.io.Printf("Highest tier:  %s\n", user.HighestTier)
	}
	if user.SessionExpiry != nil {
		c.io.Printf("Session until: %s\n", user.SessionExpiry.Format(time.RFC3339))
	}

	c.io.Println()
	c.io.Println("Cookies:")
	for _, ck := range provider.Cookies() {
		c.io.Printf("  %-16s %-12s expires %s\n", ck.Name, maskValue(ck.Value), ck.Expires.Format(time.RFC3339))
	}

	if !provider.CheckAuth() {
		c.io.Println()
		c.io.Println("⚠️  Session is already expired.")
	}
	return nil
}
