package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evergrid/quoteflow/internal/logging"
)

// Environment variables honored by the CLI logging setup. Flags win over
// environment, environment wins over defaults.
const (
	EnvLogLevel  = "QUOTEFLOW_LOG_LEVEL"
	EnvLogFormat = "QUOTEFLOW_LOG_FORMAT"
)

// setupLogging configures the package logger from flags and environment
// and installs it on the command context so library components can pick
// it up via logging.FromContext.
func setupLogging(cmd *cobra.Command) error {
	cfg := logging.Config{
		Level:  "info",
		Format: "console",
		Out:    cmd.ErrOrStderr(),
	}

	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		cfg.Level = envLevel
	}
	if envFormat := os.Getenv(EnvLogFormat); envFormat != "" {
		cfg.Format = envFormat
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Level = "debug"
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Format = format
	}

	root := logging.New(cfg)
	logger = logging.ComponentLogger(root, "cli")

	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
