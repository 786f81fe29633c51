package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/commission/internal/buildinfo"
	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/logger"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
}

// load resolves the config and builds a logger writing to w. The
// --log-level flag wins over the config file and environment.
func (o *rootOptions) load(w io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	return cfg, logger.New(w, level), nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "commission",
		Short:   "Calculate bank commission fees for deposit and withdrawal operations",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to "+config.FileName+" (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCalculateCommand(opts))

	return rootCmd
}
