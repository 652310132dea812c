package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/buildinfo"
	"github.com/cleared-dev/ledgerload/internal/config"
	"github.com/cleared-dev/ledgerload/internal/logger"
)

// envFile is loaded into the environment before config overrides are applied.
const envFile = ".env"

// app carries the resolved configuration and logger to subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerload",
		Short:   "Convert accounting exports into SQL for a double-entry schema",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(a),
		newJournalsCommand(a),
		newLoadCommand(a),
		newRunsCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	a.cfg = cfg
	if cfg.Log.Format == "json" {
		a.log = logger.NewWithWriter(os.Stderr, cfg.Log.Level)
	} else {
		a.log = logger.New(cfg.Log.Level)
	}
	cmd.SetContext(logger.WithContext(cmd.Context(), a.log))
	return nil
}
