package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spiget/internal/config"
	"github.com/matzehuels/spiget/pkg/cache"
	apierr "github.com/matzehuels/spiget/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached responses from the file cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Cache.Backend != config.BackendFile {
				printInfo(c.out, "Nothing to clear for the %s backend", c.cfg.Cache.Backend)
				printDetail(c.out, "Redis entries expire after %s", c.cfg.Cache.TTL)
				return nil
			}

			dir, err := c.cfg.CacheDir()
			if err != nil {
				return apierr.Wrap(apierr.ErrCodeCache, err, "get cache dir")
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(c.out, "Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return apierr.Wrap(apierr.ErrCodeCache, err, "open cache")
			}
			defer fc.Close()

			count, err := fc.Clear()
			if err != nil {
				return apierr.Wrap(apierr.ErrCodeCache, err, "clear cache")
			}
			printSuccess(c.out, "Cleared %d cached responses", count)
			printDetail(c.out, "Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where responses are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.cfg.Cache.Backend {
			case config.BackendFile:
				dir, err := c.cfg.CacheDir()
				if err != nil {
					return apierr.Wrap(apierr.ErrCodeCache, err, "get cache dir")
				}
				fmt.Fprintln(c.out, dir)
			case config.BackendRedis:
				fmt.Fprintf(c.out, "redis://%s/%d\n", c.cfg.Cache.RedisAddr, c.cfg.Cache.RedisDB)
			default:
				fmt.Fprintln(c.out, "memory")
			}
			return nil
		},
	}
}
