package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/internal/services/search"
	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
	"github.com/killallgit/podcast-gateway/pkg/logger"
)

// searchCmd runs one search against the upstream without starting the server
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search podcasts from the command line",
	Long: `Run a single podcast search against the configured upstream API and print
the results as JSON.

Example:
  podcast-gateway search serial`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc := search.NewFromConfig(cfg.Upstream, logger.Named("search"), nil)

	podcasts, err := svc.SearchPodcasts(cmd.Context(), args[0])
	if err != nil {
		logger.Error("search failed",
			zap.String("code", string(apperrors.GetCode(err))),
			zap.String("query", args[0]),
		)
		return err
	}

	out, err := json.MarshalIndent(podcasts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
