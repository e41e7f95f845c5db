package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// statusCommand creates the status command.
func (c *CLI) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the API server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.apiClient(ctx).Status.Get(ctx)
			if err != nil {
				return err
			}
			return c.render(st, func(w io.Writer) { printStatus(w, st) })
		},
	}
}
