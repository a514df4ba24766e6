package types

import (
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/internal/services/search"
	"github.com/killallgit/podcast-gateway/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Searcher search.PodcastSearcher
	Build    BuildInfo
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}
