package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cx-luo/go-smiles/internal/cli"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "smilesctl",
	Short: "Parse, validate, and round-trip SMILES molecular notation",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cli.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose {
			cfg.LogLevel = "debug"
		}

		logger, err = cli.NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a smilesctl config file")

	rootCmd.AddCommand(readCmd, roundtripCmd, traceCmd)
}

func exitError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
