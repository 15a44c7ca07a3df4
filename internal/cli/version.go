package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *commands) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.output == "json" {
				fields := map[string]string{}
				for _, f := range c.deps.BuildInfo.Fields() {
					fields[f.Label] = f.Value
				}
				return writeJSON(cmd.OutOrStdout(), fields)
			}
			for _, f := range c.deps.BuildInfo.Fields() {
				fmt.Fprintf(cmd.OutOrStdout(), "Build %s: %s\n", strings.ToLower(f.Label), f.Value)
			}
			return nil
		},
	}
}
