package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/integrations/spiget"
)

// searchCommand creates the search command tree.
func (c *CLI) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search resources or authors",
	}

	var (
		resOpts  integrations.ListOptions
		resField string
	)
	resources := &cobra.Command{
		Use:   "resources <query>",
		Short: "Search resources by name or tag",
		Example: `  spiget search resources essentials
  spiget search resources "world edit" --field tag --size 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")
			list, err := c.apiClient(ctx).Search.Resources(ctx, query, spiget.ResourceSearchField(resField), resOpts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printResourceList(w, list) })
		},
	}
	resources.Flags().StringVar(&resField, "field", string(spiget.ResourceFieldName), "field to search in (name or tag)")
	addListFlags(resources, &resOpts)

	var (
		authOpts  integrations.ListOptions
		authField string
	)
	authors := &cobra.Command{
		Use:   "authors <query>",
		Short: "Search authors by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")
			list, err := c.apiClient(ctx).Search.Authors(ctx, query, spiget.AuthorSearchField(authField), authOpts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printAuthorList(w, list) })
		},
	}
	authors.Flags().StringVar(&authField, "field", string(spiget.AuthorFieldName), "field to search in (name)")
	addListFlags(authors, &authOpts)

	cmd.AddCommand(resources, authors)
	return cmd
}
