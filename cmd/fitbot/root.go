package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/config"
	"alfredoptarigan/career-fit/internal/logger"
)

const (
	app = "fitbot"
)

var (
	// Used for flags.
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "fitbot matches resumes against job descriptions and plans trips from the terminal",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

// setup loads configuration and builds a logger. Flags win over LOG_* env vars.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	l, err := logger.New(jsonLog || cfg.Server.LogJSON, debug || cfg.Server.LogDebug)
	if err != nil {
		return nil, nil, err
	}

	return cfg, l, nil
}
