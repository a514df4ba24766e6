package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/api"
	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/internal/services/search"
	"github.com/killallgit/podcast-gateway/pkg/logger"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway server",
	Long: `Start the Podcast Search Gateway with the configured settings.

The server answers GraphQL requests on /graphql and serves the GraphiQL
explorer on /graphiql.

Example:
  podcast-gateway serve
  podcast-gateway serve --port 9090
  podcast-gateway serve --host 127.0.0.1 --port 4000`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	log := logger.Named("server")
	for _, warning := range cfg.Warnings() {
		log.Warn(warning)
	}

	m := metrics.New()
	deps := &types.Dependencies{
		Config:   cfg,
		Logger:   logger.Log,
		Metrics:  m,
		Searcher: search.NewFromConfig(cfg.Upstream, logger.Named("search"), m),
		Build:    buildInfo(),
	}

	server := api.NewServer(cfg.Server)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	addr, err := server.Listen()
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Address(), err)
	}

	fields := []zap.Field{
		zap.String("address", addr.String()),
		zap.String("upstream", cfg.Upstream.APIURL),
		zap.String("version", Version),
	}
	if tcp, ok := addr.(*net.TCPAddr); ok {
		fields = append(fields, zap.Int("port", tcp.Port))
	}
	log.Info("server ready at http://"+addr.String()+"/graphql", fields...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("server gracefully stopped")
	return nil
}
