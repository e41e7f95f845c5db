// Package cli implements the spiget command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/matzehuels/spiget/internal/config"
	"github.com/matzehuels/spiget/pkg/buildinfo"
	"github.com/matzehuels/spiget/pkg/cache"
	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
	"github.com/matzehuels/spiget/pkg/integrations/spiget"
	"github.com/matzehuels/spiget/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "spiget"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out io.Writer

	// Global flags
	configPath string
	verbose    bool
	jsonOut    bool
	noCache    bool

	cfg     *config.Config
	api     *spiget.API
	backend cache.Cache
}

// New creates a CLI writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Query the Spiget API for SpigotMC resources",
		Long:          `spiget queries the Spiget REST API for SpigotMC resources, authors, categories, reviews, versions and updates.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spiget/config.toml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.jsonOut, "json", false, "print raw JSON instead of formatted output")
	flags.BoolVar(&c.noCache, "no-cache", false, "do not read or write the response cache")

	root.AddCommand(c.resourcesCommand())
	root.AddCommand(c.authorsCommand())
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.webhookCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Close releases the response cache backend.
func (c *CLI) Close() error {
	if c.api != nil {
		err := c.api.Client().Close()
		c.api, c.backend = nil, nil
		return err
	}
	if c.backend != nil {
		err := c.backend.Close()
		c.backend = nil
		return err
	}
	return nil
}

// setup loads the configuration and attaches the logger to the context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetHTTPHooks(hooks)
	observability.SetCacheHooks(hooks)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// API Factory
// =============================================================================

// apiClient returns the API, creating it on first use.
func (c *CLI) apiClient(ctx context.Context) *spiget.API {
	if c.api != nil {
		return c.api
	}

	opts := []integrations.Option{
		integrations.WithBaseURL(c.cfg.BaseURL),
		integrations.WithUserAgent(c.cfg.UserAgent),
		integrations.WithTimeout(c.cfg.Timeout.Duration),
		integrations.WithRateLimit(rate.Limit(c.cfg.RateLimit), int(math.Ceil(c.cfg.RateLimit))),
		integrations.WithLogger(c.Logger),
	}
	if !c.noCache {
		backend, err := c.openBackend(ctx)
		if err != nil {
			c.Logger.Warn("response cache disabled", "backend", c.cfg.Cache.Backend, "err", err)
		} else if backend != nil {
			opts = append(opts, integrations.WithCache(backend, c.cfg.Cache.Backend, c.cfg.Cache.TTL.Duration))
		}
	}

	c.api = spiget.New(integrations.NewClient(opts...))
	return c.api
}

// openBackend opens the configured second-tier cache. The memory backend
// has no second tier and returns nil.
func (c *CLI) openBackend(ctx context.Context) (cache.Cache, error) {
	switch c.cfg.Cache.Backend {
	case config.BackendFile:
		dir, err := c.cfg.CacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisAddr, c.cfg.Cache.RedisDB)
	default:
		return nil, nil
	}
}

// =============================================================================
// Output Helpers
// =============================================================================

// render prints v as indented JSON when --json is set, and through text otherwise.
func (c *CLI) render(v any, text func(w io.Writer)) error {
	if c.jsonOut {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return apierr.Wrap(apierr.ErrCodeInternal, err, "encode output")
		}
		_, err = c.out.Write(append(data, '\n'))
		return err
	}
	text(c.out)
	return nil
}

// parseID parses a positional id argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, apierr.New(apierr.ErrCodeInvalidInput, "%s id must be a number, got %q", kind, arg)
	}
	return id, nil
}

// addListFlags registers --size, --page, --sort and --fields on cmd.
func addListFlags(cmd *cobra.Command, opts *integrations.ListOptions) {
	cmd.Flags().IntVar(&opts.Size, "size", 0, "number of items per page")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page number")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort field, prefixed with + or - (e.g. -downloads)")
	cmd.Flags().StringSliceVar(&opts.Fields, "fields", nil, "fields to return (e.g. id,name)")
}
