package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/killallgit/podcast-gateway/internal/services/search"
	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
)

// Resolver holds the dependencies used by field resolvers
type Resolver struct {
	searcher search.PodcastSearcher
}

// SearchPodcasts resolves Query.searchPodcasts
func (r *Resolver) SearchPodcasts(p graphql.ResolveParams) (interface{}, error) {
	query, ok := p.Args["query"].(string)
	if !ok {
		// unreachable once the document has been validated
		return nil, apperrors.InvalidInput("argument \"query\" must be a string")
	}

	podcasts, err := r.searcher.SearchPodcasts(p.Context, query)
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}
