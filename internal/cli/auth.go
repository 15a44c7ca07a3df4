package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/spf13/cobra"
)

func (c *commands) loginCommand() *cobra.Command {
	var phone, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with phone and password",
		Long: `Log in with phone and password and store the issued token.

The token is kept in the local database, sealed when a storage passphrase
is configured, and reused by every later command until logout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				return client.Login(ctx, phone, password)
			})
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Account phone number")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *commands) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				if err := client.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
				return nil
			})
		},
	}
}
