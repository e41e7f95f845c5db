package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/pkg/integrations"
)

// categoriesCommand creates the categories command tree.
func (c *CLI) categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Browse resource categories",
	}

	var listOpts integrations.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cats, err := c.apiClient(ctx).Categories.List(ctx, listOpts)
			if err != nil {
				return err
			}
			return c.render(cats, func(w io.Writer) { printCategoryList(w, cats) })
		},
	}
	addListFlags(list, &listOpts)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cat, err := c.apiClient(ctx).Categories.Details(ctx, id)
			if err != nil {
				return err
			}
			return c.render(cat, func(w io.Writer) { printRow(w, cat.ID, cat.Name) })
		},
	}

	var resOpts integrations.ListOptions
	resources := &cobra.Command{
		Use:   "resources <id>",
		Short: "List the resources in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := c.apiClient(ctx).Categories.Resources(ctx, id, resOpts)
			if err != nil {
				return err
			}
			return c.render(res, func(w io.Writer) { printResourceList(w, res) })
		},
	}
	addListFlags(resources, &resOpts)

	cmd.AddCommand(list, get, resources)
	return cmd
}
