package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect the authentication state",
	Long: `Inspect the client's authentication state.

The client manages its own bearer token: a stable per-installation
client ID is exchanged for a short-lived token, which is refreshed
automatically shortly before expiry. These commands exist for
troubleshooting; no other command requires running them first.`,
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Acquire or refresh the bearer token",
	RunE:  runAuthToken,
}

var authMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the identity bound to the current token",
	RunE:  runAuthMe,
}

func init() {
	authCmd.AddCommand(authTokenCmd)
	authCmd.AddCommand(authMeCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthToken(cmd *cobra.Command, _ []string) error {
	if bradoAPI == nil {
		return errors.New("api client not configured")
	}

	ctx := context.Background()
	cred, err := bradoAPI.EnsureToken(ctx)
	if err != nil {
		return fmt.Errorf("token acquisition failed: %w", err)
	}

	cmd.Printf("Client ID: %s\n", cred.ClientID)
	cmd.Printf("Token valid until: %s\n", cred.ExpiresAt.Format(time.RFC3339))
	return nil
}

func runAuthMe(cmd *cobra.Command, _ []string) error {
	if bradoAPI == nil {
		return errors.New("api client not configured")
	}

	ctx := context.Background()
	me, err := bradoAPI.Me(ctx)
	if err != nil {
		return fmt.Errorf("identity lookup failed: %w", err)
	}

	cmd.Printf("Subject: %s\n", me.Subject)
	if me.TTL > 0 {
		cmd.Printf("Token TTL: %ds\n", me.TTL)
	}
	return nil
}
