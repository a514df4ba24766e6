package search

import (
	"context"

	"github.com/killallgit/podcast-gateway/internal/models"
)

// PodcastFetcher defines the interface for fetching podcasts from the upstream directory
type PodcastFetcher interface {
	SearchPodcasts(ctx context.Context, query string) ([]models.Podcast, error)
}

// PodcastSearcher is what the GraphQL layer resolves searchPodcasts against
type PodcastSearcher interface {
	SearchPodcasts(ctx context.Context, query string) ([]models.Podcast, error)
}
