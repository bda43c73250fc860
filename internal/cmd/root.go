// Package cmd holds the bridge command tree.
package cmd

import (
	"io"

	"github.com/Iron-Ham/bridge/internal/config"
	"github.com/Iron-Ham/bridge/internal/demo"
	"github.com/Iron-Ham/bridge/internal/errors"
	"github.com/Iron-Ham/bridge/internal/implementor"
	"github.com/Iron-Ham/bridge/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the full command tree. Each call returns independent
// commands and flags; viper state is global.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bridge",
		Short: "Bridge pattern demonstration",
		Long: `Bridge wires each configured implementor into an abstraction and runs
the abstractions in order. With no configuration it prints:

  Concrete Implementor A
  Concrete Implementor B`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runBridge,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/bridge/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().StringSlice("implementors", nil, "implementor names in run order (default a,b)")
	rootCmd.Flags().String("abstraction", "", "abstraction kind: refined or logged (default refined)")
	_ = viper.BindPFlag("demo.implementors", rootCmd.Flags().Lookup("implementors"))
	_ = viper.BindPFlag("demo.abstraction", rootCmd.Flags().Lookup("abstraction"))

	rootCmd.AddCommand(newVariantsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())

		// A missing default config file is not an error
		_ = viper.ReadInConfig()
	}

	config.BindEnv()
	return nil
}

func runBridge(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { err = closeLogger(err, logger) }()

	return demo.Run(cmd.OutOrStdout(), demo.Options{
		Implementors: cfg.Demo.Implementors,
		Abstraction:  cfg.Demo.Abstraction,
		Registry:     implementor.DefaultRegistry(),
		Logger:       logger,
	})
}

// closeLogger closes c and joins any failure onto err.
func closeLogger(err error, c io.Closer) error {
	if closeErr := c.Close(); closeErr != nil {
		return errors.Join(err, errors.Wrapf(closeErr, "close log file"))
	}
	return err
}

// newLogger returns the logger described by cfg.Logging. Without a directory
// it writes to the command's stderr.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	if cfg.Logging.Dir == "" {
		return logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Logging.Level), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}
