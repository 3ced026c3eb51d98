package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/imdbkit/internal/config"
	"github.com/Digital-Shane/imdbkit/internal/log"
	"github.com/Digital-Shane/imdbkit/internal/provider/imdb"
)

// app carries the state resolved by the root command before any
// subcommand runs.
type app struct {
	configPath string
	logLevel   string
	localize   bool
	language   string
	country    string
	timeout    int

	opts   []imdb.Option
	cfg    *config.Config
	logger *slog.Logger
	client *imdb.Client
}

// newRootCmd builds the command tree. opts are appended to the client
// options, which lets tests swap the transport.
func newRootCmd(opts ...imdb.Option) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "imdbkit",
		Short: "Look up IMDb titles, people, companies and lists",
		Long: `imdbkit queries the IMDb GraphQL API and falls back to the public HTML
pages where the API has no data. Every command prints its record as JSON.

Settings are read from ~/.imdbkit/config.json and can be overridden with flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to the config file (default ~/.imdbkit/config.json)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&a.localize, "localize", false, "Send the configured language and country with every request")
	flags.StringVar(&a.language, "language", "", "Language tag used when localizing, e.g. fr-FR")
	flags.StringVar(&a.country, "country", "", "Country code used when localizing, e.g. FR")
	flags.IntVar(&a.timeout, "timeout", 0, "Request timeout in seconds")

	root.AddCommand(
		a.titleCmd(),
		a.personCmd(),
		a.companyCmd(),
		a.videoCmd(),
		a.searchCmd(),
		a.keywordCmd(),
		a.newsCmd(),
		a.boxOfficeCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFrom(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("localize") {
		cfg.UseLocalization = a.localize
	}
	if flags.Changed("language") {
		cfg.Language = a.language
	}
	if flags.Changed("country") {
		cfg.Country = a.country
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.New(cfg.LogLevel, cmd.ErrOrStderr())
	opts := append([]imdb.Option{imdb.WithLogger(a.logger)}, a.opts...)
	a.client = imdb.New(cfg, opts...)
	return nil
}
