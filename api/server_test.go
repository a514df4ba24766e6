package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/internal/models"
	"github.com/killallgit/podcast-gateway/pkg/config"
	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
)

type stubSearcher struct {
	podcasts []models.Podcast
	err      error
	queries  []string
}

func (s *stubSearcher) SearchPodcasts(ctx context.Context, query string) ([]models.Podcast, error) {
	s.queries = append(s.queries, query)
	return s.podcasts, s.err
}

func newTestServer(t *testing.T, cfg *config.Config, searcher *stubSearcher) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = config.Default()
	}

	server := NewServer(cfg.Server)
	server.SetDependencies(&types.Dependencies{
		Config:   cfg,
		Logger:   zap.NewNop(),
		Metrics:  metrics.New(),
		Searcher: searcher,
		Build:    types.BuildInfo{Version: "1.0.0"},
	})
	require.NoError(t, server.Initialize())
	return server
}

func serve(server *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, req)
	return w
}

func TestServerRoutes(t *testing.T) {
	searcher := &stubSearcher{podcasts: []models.Podcast{models.NewPodcast("Serial", "S1")}}
	server := newTestServer(t, nil, searcher)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "graphql search",
			method:         http.MethodPost,
			path:           "/graphql",
			body:           `{"query":"{ searchPodcasts(query: \"serial\") { title description } }"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Serial"`,
		},
		{
			name:           "graphiql page",
			method:         http.MethodGet,
			path:           "/graphiql",
			expectedStatus: http.StatusOK,
			expectedBody:   "Podcast Search GraphiQL",
		},
		{
			name:           "health",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "service info",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Podcast Search Gateway"`,
		},
		{
			name:           "docs redirect",
			method:         http.MethodGet,
			path:           "/docs",
			expectedStatus: http.StatusMovedPermanently,
		},
		{
			name:           "swagger document",
			method:         http.MethodGet,
			path:           "/docs/doc.json",
			expectedStatus: http.StatusOK,
			expectedBody:   "searchPodcasts",
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/podcasts",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"path":"/podcasts"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			w := serve(server, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}

	assert.Equal(t, []string{"serial"}, searcher.queries)
}

func TestServerMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, nil, &stubSearcher{})

	serve(server, httptest.NewRequest(http.MethodGet, "/health", nil))
	w := serve(server, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gateway_http_requests_total")
}

func TestServerOptionalRoutesDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Monitoring.MetricsEnabled = false
	cfg.Docs.Enabled = false
	server := newTestServer(t, cfg, &stubSearcher{})

	assert.Equal(t, http.StatusNotFound, serve(server, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(server, httptest.NewRequest(http.MethodGet, "/docs", nil)).Code)
}

func TestServerUpstreamFailure(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.7:443: connect: connection refused")
	server := newTestServer(t, nil, &stubSearcher{err: apperrors.UpstreamUnavailable(cause)})

	req := httptest.NewRequest(http.MethodPost, "/graphql",
		strings.NewReader(`{"query":"{ searchPodcasts(query: \"serial\") { title } }"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(server, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data   map[string]interface{} `json:"data"`
		Errors []struct {
			Message    string                 `json:"message"`
			Extensions map[string]interface{} `json:"extensions"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "failed to fetch podcasts from the upstream API", resp.Errors[0].Message)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", resp.Errors[0].Extensions["code"])
	assert.Nil(t, resp.Data["searchPodcasts"])
	assert.NotContains(t, w.Body.String(), "10.0.0.7")
}

func TestServerCORSPreflight(t *testing.T) {
	server := newTestServer(t, nil, &stubSearcher{})

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "https://studio.example.com")
	w := serve(server, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerRequestTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Security.MaxRequestBytes = 32
	server := newTestServer(t, cfg, &stubSearcher{})

	body := fmt.Sprintf(`{"query":"{ searchPodcasts(query: \"%s\") { title } }"}`, strings.Repeat("a", 64))
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	assert.Equal(t, http.StatusRequestEntityTooLarge, serve(server, req).Code)
}

func TestServerListenAndShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	server := newTestServer(t, cfg, &stubSearcher{})

	addr, err := server.Listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	resp, err := http.Get("http://" + addr.String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))
	assert.NoError(t, <-done)
}

func TestInitializeWithoutDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer(config.Default().Server)
	require.NoError(t, server.Initialize())

	w := serve(server, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
