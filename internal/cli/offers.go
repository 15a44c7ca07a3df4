package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/spf13/cobra"
)

type offerOutput struct {
	Available  bool   `json:"available"`
	GPUVersion string `json:"gpu_version,omitempty"`
	QuickStart bool   `json:"quick_start"`
}

func (c *commands) offersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Inspect GPU offers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cheapest",
		Short: "Show the GPU a new session would be created on",
		Long: `Show the GPU a new session would be created on.

Deprecated offers are skipped and quick-start offers preferred; among the
remaining offers one is picked at random, so repeated calls may differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmer := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			return c.withClient(cmd, confirmer, func(ctx context.Context, client service.SessionClient) error {
				offer, ok, err := client.FindCheapestGPU(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if c.output == "json" {
					return writeJSON(out, offerOutput{Available: ok, GPUVersion: offer.GPUVersion, QuickStart: offer.QuickStart})
				}
				if !ok {
					fmt.Fprintln(out, service.MsgNoGPUAvailable)
					return nil
				}
				fmt.Fprintf(out, "GPU: %s\nQuick start: %t\n", offer.GPUVersion, offer.QuickStart)
				return nil
			})
		},
	})

	return cmd
}
