// Package graph builds the gateway's GraphQL schema and executes operations against it.
//
// The schema is fixed:
//
//	type Query {
//		searchPodcasts(query: String!): [Podcast]
//	}
//
//	type Podcast {
//		title: String
//		description: String
//	}
//
// Argument presence and type are enforced by schema validation, so the
// searchPodcasts resolver only ever runs with a string query.
package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/killallgit/podcast-gateway/internal/models"
	"github.com/killallgit/podcast-gateway/internal/services/search"
)

var podcastType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Podcast",
	Description: "A podcast returned by the upstream directory search.",
	Fields: graphql.Fields{
		"title": &graphql.Field{
			Type:    graphql.String,
			Resolve: podcastField(func(p models.Podcast) *string { return p.Title }),
		},
		"description": &graphql.Field{
			Type:    graphql.String,
			Resolve: podcastField(func(p models.Podcast) *string { return p.Description }),
		},
	},
})

// NewSchema builds the schema with searchPodcasts resolved by searcher
func NewSchema(searcher search.PodcastSearcher) (graphql.Schema, error) {
	resolver := &Resolver{searcher: searcher}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"searchPodcasts": &graphql.Field{
				Type:        graphql.NewList(podcastType),
				Description: "Search the upstream podcast directory by free-text term.",
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.String),
						Description: "Free-text search term.",
					},
				},
				Resolve: resolver.SearchPodcasts,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("building schema: %w", err)
	}
	return schema, nil
}

func podcastField(get func(models.Podcast) *string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		var podcast models.Podcast
		switch src := p.Source.(type) {
		case models.Podcast:
			podcast = src
		case *models.Podcast:
			if src == nil {
				return nil, nil
			}
			podcast = *src
		default:
			return nil, nil
		}

		if v := get(podcast); v != nil {
			return *v, nil
		}
		return nil, nil
	}
}
