package cli

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/spf13/cobra"
)

func (c *commands) sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List and manage sessions",
		Long:  `List, create and close GPU SSH sessions of the logged-in account.`,
	}

	cmd.AddCommand(
		c.sessionsListCommand(),
		c.sessionsCreateCommand(),
		c.sessionsCloseCommand(),
	)
	return cmd
}

func (c *commands) sessionsListCommand() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List waiting and running sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				if err := fetchPage(ctx, client, page, size); err != nil {
					return err
				}
				return writeSessions(cmd.OutOrStdout(), c.output, client.State())
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "Page size (10, 20 or 50); the configured page size when 0")

	return cmd
}

// fetchPage loads the requested page with a single list call.
func fetchPage(ctx context.Context, client service.SessionClient, page, size int) error {
	if !client.State().Authenticated {
		return service.ErrNotAuthenticated
	}

	if page <= 1 && size == 0 {
		return client.ListSessions(ctx)
	}
	return client.Goto(ctx, page, size)
}

func (c *commands) sessionsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create an SSH session on the cheapest available GPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				if err := client.CreateSession(ctx); err != nil {
					return err
				}
				return writeSessions(cmd.OutOrStdout(), c.output, client.State())
			})
		},
	}
}

func (c *commands) sessionsCloseCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close [session-id]",
		Short: "Close a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return invalidIDError(args[0])
			}

			var confirmer service.Confirmer = newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			if yes {
				confirmer = autoConfirmer{}
			}

			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				return client.CloseSession(ctx, id)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
