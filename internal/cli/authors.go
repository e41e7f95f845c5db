package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/integrations/spiget"
)

// authorsCommand creates the authors command tree.
func (c *CLI) authorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "authors",
		Aliases: []string{"author"},
		Short:   "Browse authors, their resources and reviews",
	}

	cmd.AddCommand(c.authorListCommand())
	cmd.AddCommand(c.authorGetCommand())
	cmd.AddCommand(c.authorResourcesCommand())
	cmd.AddCommand(c.authorReviewsCommand())
	cmd.AddCommand(c.authorSearchCommand())

	return cmd
}

func (c *CLI) authorListCommand() *cobra.Command {
	var opts integrations.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Authors.List(ctx, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printAuthorList(w, list) })
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) authorGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Aliases: []string{"details"},
		Short:   "Show an author",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("author", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			a, err := c.apiClient(ctx).Authors.Details(ctx, id)
			if err != nil {
				return err
			}
			return c.render(a, func(w io.Writer) { printAuthor(w, a) })
		},
	}
}

func (c *CLI) authorResourcesCommand() *cobra.Command {
	var opts integrations.ListOptions
	cmd := &cobra.Command{
		Use:   "resources <id>",
		Short: "List the resources of an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("author", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Authors.Resources(ctx, id, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printResourceList(w, list) })
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) authorReviewsCommand() *cobra.Command {
	var opts integrations.ListOptions
	cmd := &cobra.Command{
		Use:   "reviews <id>",
		Short: "List the reviews an author left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("author", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Authors.Reviews(ctx, id, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printReviewList(w, list) })
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) authorSearchCommand() *cobra.Command {
	var (
		opts  integrations.ListOptions
		field string
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search authors by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Authors.Search(ctx, args[0], spiget.AuthorSearchField(field), opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printAuthorList(w, list) })
		},
	}
	cmd.Flags().StringVar(&field, "field", string(spiget.AuthorFieldName), "field to search in (name)")
	addListFlags(cmd, &opts)
	return cmd
}
