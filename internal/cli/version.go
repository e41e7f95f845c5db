package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/pkg/buildinfo"
)

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, buildinfo.String())
			fmt.Fprintln(c.out, StyleDim.Render("user agent: "+buildinfo.UserAgent()))
			return nil
		},
	}
}
