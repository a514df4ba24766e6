package podchaser

import "github.com/killallgit/podcast-gateway/internal/models"

// searchPodcastsQuery is the document sent upstream for every search
const searchPodcastsQuery = `query searchPodcasts($query: String!) {
	podcasts(searchTerm: $query) {
		data {
			title
			description
		}
	}
}`

// resultPath is where the podcast list lives inside the upstream response body
const resultPath = "data.podcasts.data"

// GraphQLRequest is the body posted to the upstream endpoint
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// SearchResponse is the upstream response envelope.
// Pointers distinguish an absent or null field from an empty list.
type SearchResponse struct {
	Data   *SearchData    `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// SearchData holds the top-level data object
type SearchData struct {
	Podcasts *PodcastList `json:"podcasts"`
}

// PodcastList is the paginated list wrapper used by the upstream schema
type PodcastList struct {
	Data *[]models.Podcast `json:"data"`
}

// GraphQLError is one entry of an upstream "errors" array
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Podcasts navigates to data.podcasts.data, reporting whether the path exists
func (r *SearchResponse) Podcasts() ([]models.Podcast, bool) {
	if r == nil || r.Data == nil || r.Data.Podcasts == nil || r.Data.Podcasts.Data == nil {
		return nil, false
	}
	return *r.Data.Podcasts.Data, true
}

func (r *SearchResponse) errorMessages() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Message
	}
	return messages
}
