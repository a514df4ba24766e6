package search

import (
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/internal/services/podchaser"
	"github.com/killallgit/podcast-gateway/pkg/config"
)

// NewFromConfig builds the Podchaser client and wraps it in a Service
func NewFromConfig(cfg config.UpstreamConfig, log *zap.Logger, m *metrics.Metrics) *Service {
	client := podchaser.NewClient(podchaser.Config{
		APIURL:    cfg.APIURL,
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})

	return NewService(
		client,
		WithLogger(log),
		WithMetrics(m),
		WithVerboseErrors(cfg.VerboseErrors),
	)
}
