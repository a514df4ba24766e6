package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the body of non-GraphQL error responses
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Upstream  UpstreamStatus `json:"upstream"`
}

// UpstreamStatus describes how the upstream API is configured. It never
// triggers an upstream call.
type UpstreamStatus struct {
	Status   string `json:"status"`
	Endpoint string `json:"endpoint,omitempty"`
}

// VersionResponse is returned by the service info endpoint
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// GraphQLErrorResponse is returned when a request cannot be executed at all
type GraphQLErrorResponse struct {
	Errors []GraphQLErrorMessage `json:"errors"`
}

// GraphQLErrorMessage is one request-level GraphQL error
type GraphQLErrorMessage struct {
	Message string `json:"message"`
}
