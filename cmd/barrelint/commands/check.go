package commands

import (
	"github.com/spf13/cobra"

	"github.com/devindavies/barrelint/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Analyze source files for oversized barrel file imports",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			maxGraphSize, err := cmd.Flags().GetInt("max-graph-size")
			if err != nil {
				return err
			}
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigPath:   configPath,
				Debug:        debug,
				MaxGraphSize: maxGraphSize,
				Format:       format,
			})
		},
	}

	cmd.Flags().Int("max-graph-size", 0, "Override the maximum allowed module graph size")
	cmd.Flags().String("format", "text", "Output format: text or json")

	return cmd
}
