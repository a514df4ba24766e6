package search

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/internal/models"
	"github.com/killallgit/podcast-gateway/internal/services/podchaser"
	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
	"github.com/killallgit/podcast-gateway/pkg/logger"
)

// Service implements PodcastSearcher on top of an upstream fetcher.
// Every upstream failure leaves this service as the same public error.
type Service struct {
	fetcher       PodcastFetcher
	logger        *zap.Logger
	metrics       *metrics.Metrics
	verboseErrors bool
	now           func() time.Time
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithLogger sets the logger used to record failure causes
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics enables upstream call instrumentation
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithVerboseErrors attaches the failure kind to the public error extensions
func WithVerboseErrors(verbose bool) ServiceOption {
	return func(s *Service) {
		s.verboseErrors = verbose
	}
}

// NewService creates a new search service with optional configuration
func NewService(fetcher PodcastFetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher: fetcher,
		logger:  zap.NewNop(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SearchPodcasts fetches podcasts for query. The query is passed through untouched;
// validating it is the schema's job.
func (s *Service) SearchPodcasts(ctx context.Context, query string) ([]models.Podcast, error) {
	log := logger.FromContext(ctx, s.logger)

	if s.fetcher == nil {
		log.Error("upstream search failed", zap.String("kind", string(podchaser.KindUnknown)), zap.String("error", "no upstream client configured"))
		return nil, s.publicError(nil, podchaser.KindUnknown)
	}

	start := s.now()
	podcasts, err := s.fetcher.SearchPodcasts(ctx, query)
	elapsed := s.now().Sub(start)

	if err != nil {
		kind := podchaser.KindOf(err)
		s.metrics.ObserveUpstream(string(kind), elapsed)
		log.Error("upstream search failed",
			zap.String("kind", string(kind)),
			zap.String("code", string(failureCode(err))),
			zap.String("query", query),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, s.publicError(err, kind)
	}

	s.metrics.ObserveUpstream(metrics.OutcomeSuccess, elapsed)
	s.metrics.ObservePodcasts(len(podcasts))
	log.Debug("upstream search succeeded",
		zap.String("query", query),
		zap.Int("count", len(podcasts)),
		zap.Duration("elapsed", elapsed),
	)

	return podcasts, nil
}

func (s *Service) publicError(cause error, kind podchaser.Kind) error {
	appErr := apperrors.UpstreamUnavailable(cause)
	if s.verboseErrors {
		appErr.WithDetail("kind", string(kind))
	}
	return appErr
}

// failureCode is the internal code logged for a failed upstream call.
// Callers always see ErrCodeUpstreamUnavailable.
func failureCode(err error) apperrors.ErrorCode {
	var timeout interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &timeout) && timeout.Timeout()) {
		return apperrors.ErrCodeAPITimeout
	}
	return apperrors.ErrCodeUpstreamUnavailable
}
