// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"io"

	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/spf13/cobra"
)

// Runtime is an opened client: a SessionClient plus the resources behind it.
type Runtime interface {
	Sessions() service.SessionClient
	Close() error
}

// Opener builds a Runtime from the parsed configuration flags. confirmer
// answers close confirmations for the lifetime of the runtime.
type Opener func(ctx context.Context, flags *config.StructuredConfig, confirmer service.Confirmer) (Runtime, error)

// TUIRunner starts the interactive UI and blocks until it exits.
type TUIRunner func(ctx context.Context, flags *config.StructuredConfig) error

// Deps are the collaborators of the command tree.
type Deps struct {
	Open      Opener
	RunTUI    TUIRunner
	BuildInfo models.AppBuildInfo

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type commands struct {
	deps   Deps
	flags  *config.StructuredConfig
	output string
}

// NewRootCommand assembles the "gpu-missions" command tree. Without a
// subcommand it starts the TUI.
func NewRootCommand(deps Deps) *cobra.Command {
	fs, flagCfg := config.NewFlagSet("gpu-missions")
	c := &commands{deps: deps, flags: flagCfg}

	root := &cobra.Command{
		Use:   "gpu-missions",
		Short: "Rent and manage GPU SSH sessions",
		Long: `gpu-missions logs into the GPU rental service and manages SSH sessions.

Run without a command to open the terminal UI, or use the commands below
from scripts:
- log in and out
- list, create and close sessions
- look up the cheapest GPU offer`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runTUI,
	}
	root.SetIn(deps.In)
	root.SetOut(deps.Out)
	root.SetErr(deps.Err)

	root.PersistentFlags().AddGoFlagSet(fs)
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "table", "Output format (table, json)")

	root.AddCommand(
		c.tuiCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.sessionsCommand(),
		c.offersCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *commands) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *commands) runTUI(cmd *cobra.Command, _ []string) error {
	return c.deps.RunTUI(cmd.Context(), c.flags)
}

// withClient opens a runtime, restores the stored credential, runs fn and
// prints the notice fn left behind.
func (c *commands) withClient(
	cmd *cobra.Command,
	confirmer service.Confirmer,
	fn func(ctx context.Context, client service.SessionClient) error,
) error {
	ctx := cmd.Context()

	rt, err := c.deps.Open(ctx, c.flags, confirmer)
	if err != nil {
		return err
	}
	defer rt.Close()

	client := rt.Sessions()
	if err = client.Restore(ctx); err != nil {
		return err
	}

	return c.report(cmd, client, fn(ctx, client))
}
