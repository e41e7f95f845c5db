package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/integrations/spiget"
	"github.com/matzehuels/spiget/pkg/models"
)

// resourcesCommand creates the resources command tree.
func (c *CLI) resourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource", "res"},
		Short:   "Browse resources, their versions, updates and reviews",
	}

	cmd.AddCommand(c.resourceListCommand("list", "List resources", (*spiget.Resources).List))
	cmd.AddCommand(c.resourceListCommand("free", "List free resources", (*spiget.Resources).Free))
	cmd.AddCommand(c.resourceListCommand("premium", "List premium resources", (*spiget.Resources).Premium))
	cmd.AddCommand(c.resourceListCommand("new", "List the newest resources", (*spiget.Resources).New))
	cmd.AddCommand(c.resourceForCommand())
	cmd.AddCommand(c.resourceGetCommand())
	cmd.AddCommand(c.resourceAuthorCommand())
	cmd.AddCommand(c.resourceDownloadCommand())
	cmd.AddCommand(c.resourceReviewsCommand())
	cmd.AddCommand(c.resourceUpdatesCommand())
	cmd.AddCommand(c.resourceVersionsCommand())
	cmd.AddCommand(c.resourceVersionCommand())

	return cmd
}

type resourceLister func(*spiget.Resources, context.Context, integrations.ListOptions) ([]models.Resource, error)

func (c *CLI) resourceListCommand(use, short string, list resourceLister) *cobra.Command {
	var opts integrations.ListOptions
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			res, err := list(c.apiClient(ctx).Resources, ctx, opts)
			if err != nil {
				return err
			}
			prog.done("fetched resources", "list", use, "count", len(res))
			return c.render(res, func(w io.Writer) { printResourceList(w, res) })
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) resourceForCommand() *cobra.Command {
	var (
		opts   integrations.ListOptions
		method string
	)
	cmd := &cobra.Command{
		Use:   "for <version>...",
		Short: "List resources tested with the given game versions",
		Example: `  spiget resources for 1.20
  spiget resources for 1.19 1.20 --method all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var versions []string
			for _, a := range args {
				versions = append(versions, strings.Split(a, ",")...)
			}
			ctx := cmd.Context()
			res, err := c.apiClient(ctx).Resources.ForVersions(ctx, versions, spiget.ForVersionsMethod(method), opts)
			if err != nil {
				return err
			}
			return c.render(res, func(w io.Writer) {
				printInfo(w, "Tested with %s of %s", res.Method, strings.Join(res.Check, ", "))
				printResourceList(w, res.Match)
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "match any or all versions (default any)")
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) resourceGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Aliases: []string{"details"},
		Short:   "Show a resource",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := c.apiClient(ctx).Resources.Details(ctx, id)
			if err != nil {
				return err
			}
			return c.render(res, func(w io.Writer) { printResource(w, res) })
		},
	}
}

func (c *CLI) resourceAuthorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "author <id>",
		Short: "Show the author of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			a, err := c.apiClient(ctx).Resources.Author(ctx, id)
			if err != nil {
				return err
			}
			return c.render(a, func(w io.Writer) { printAuthor(w, a) })
		},
	}
}

func (c *CLI) resourceDownloadCommand() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Print the download URL of a resource",
		Long:  `Resolve the download redirect of a resource, or of one of its versions, and print the file URL. Nothing is downloaded.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			api := c.apiClient(ctx)

			var u string
			if version != "" {
				u, err = api.Resources.VersionDownloadURL(ctx, id, version)
			} else {
				u, err = api.Resources.DownloadURL(ctx, id)
			}
			if err != nil {
				return err
			}
			return c.render(map[string]string{"url": u}, func(w io.Writer) {
				fmt.Fprintln(w, StyleLink.Render(u))
			})
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "version id or \"latest\"")
	return cmd
}

func (c *CLI) resourceReviewsCommand() *cobra.Command {
	var opts integrations.ListOptions
	cmd := &cobra.Command{
		Use:   "reviews <id>",
		Short: "List the reviews of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			list, err := c.apiClient(ctx).Resources.Reviews(ctx, id, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printReviewList(w, list) })
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) resourceUpdatesCommand() *cobra.Command {
	var (
		opts   integrations.ListOptions
		latest bool
	)
	cmd := &cobra.Command{
		Use:   "updates <id>",
		Short: "List the update posts of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			api := c.apiClient(ctx)
			if latest {
				u, err := api.Resources.LatestUpdate(ctx, id)
				if err != nil {
					return err
				}
				return c.render(u, func(w io.Writer) { printUpdate(w, u) })
			}
			list, err := api.Resources.Updates(ctx, id, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printUpdateList(w, list) })
		},
	}
	cmd.Flags().BoolVar(&latest, "latest", false, "show only the latest update, with its text")
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) resourceVersionsCommand() *cobra.Command {
	var (
		opts   integrations.ListOptions
		latest bool
	)
	cmd := &cobra.Command{
		Use:   "versions <id>",
		Short: "List the versions of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			api := c.apiClient(ctx)
			if latest {
				v, err := api.Resources.LatestVersion(ctx, id)
				if err != nil {
					return err
				}
				return c.render(v, func(w io.Writer) { printVersion(w, v) })
			}
			list, err := api.Resources.Versions(ctx, id, opts)
			if err != nil {
				return err
			}
			return c.render(list, func(w io.Writer) { printVersionList(w, list) })
		},
	}
	cmd.Flags().BoolVar(&latest, "latest", false, "show only the latest version")
	addListFlags(cmd, &opts)
	return cmd
}

func (c *CLI) resourceVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version <id> <version>",
		Short: "Show one version of a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("resource", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			v, err := c.apiClient(ctx).Resources.Version(ctx, id, args[1])
			if err != nil {
				return err
			}
			return c.render(v, func(w io.Writer) { printVersion(w, v) })
		},
	}
}
