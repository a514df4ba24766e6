package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/pkg/config"
	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
	"github.com/killallgit/podcast-gateway/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-gateway",
	Short: "Podcast Search Gateway server",
	Long: `Podcast Search Gateway - a GraphQL front for podcast search

Exposes a single GraphQL query, searchPodcasts(query: String!), and answers it
by forwarding the search to the Podchaser GraphQL API with a bearer token.

Features:
  • POST and GET /graphql with a GraphiQL explorer at /graphiql
  • Health, version and Prometheus metrics endpoints
  • One-shot searches from the command line`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration for commands that need it and
// initializes the global logger from it. Explicit log flags win over config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		// no config to read the log settings from, so fall back to the flags
		if initErr := initLogger(cmd, "info", "console"); initErr == nil {
			logger.Error("failed to load configuration",
				zap.String("code", string(apperrors.GetCode(err))),
				zap.String("config", path),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if err := initLogger(cmd, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}

// initLogger sets up the global logger, letting --log-level and --json-logs
// override the given level and format
func initLogger(cmd *cobra.Command, level, format string) error {
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("json-logs") {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		format = "console"
		if jsonLogs {
			format = "json"
		}
	}

	if err := logger.Init(level, format); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}
