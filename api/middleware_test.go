package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/killallgit/podcast-gateway/internal/metrics"
	"github.com/killallgit/podcast-gateway/pkg/logger"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		origins         []string
		method          string
		origin          string
		expectedStatus  int
		expectedOrigin  string
		expectedMethods string
	}{
		{
			name:            "preflight request",
			origins:         []string{"*"},
			method:          http.MethodOptions,
			origin:          "https://example.com",
			expectedStatus:  http.StatusNoContent,
			expectedOrigin:  "*",
			expectedMethods: "GET, POST, OPTIONS",
		},
		{
			name:            "regular POST request",
			origins:         []string{"*"},
			method:          http.MethodPost,
			origin:          "https://example.com",
			expectedStatus:  http.StatusOK,
			expectedOrigin:  "*",
			expectedMethods: "GET, POST, OPTIONS",
		},
		{
			name:            "listed origin",
			origins:         []string{"https://app.example.com"},
			method:          http.MethodGet,
			origin:          "https://app.example.com",
			expectedStatus:  http.StatusOK,
			expectedOrigin:  "https://app.example.com",
			expectedMethods: "GET, POST, OPTIONS",
		},
		{
			name:           "unlisted origin",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unlisted preflight falls through",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodOptions,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
			router.POST("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectedMethods, w.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		limit          int64
		bodySize       int
		expectedStatus int
	}{
		{
			name:           "under limit",
			limit:          64,
			bodySize:       32,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "exactly at limit",
			limit:          64,
			bodySize:       64,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "over limit",
			limit:          64,
			bodySize:       65,
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimitWithSize(tt.limit))
			router.POST("/test", func(c *gin.Context) {
				if _, err := io.ReadAll(c.Request.Body); err != nil {
					c.Status(http.StatusRequestEntityTooLarge)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		incoming   string
		expectSame bool
	}{
		{name: "propagates caller id", incoming: "req-123", expectSame: true},
		{name: "generates id when absent", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromContext, fromGin string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				fromContext = logger.RequestIDFromContext(c.Request.Context())
				fromGin = c.GetString("request_id")
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			header := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, header)
			assert.Equal(t, header, fromContext)
			assert.Equal(t, header, fromGin)
			if tt.expectSame {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
				assert.Len(t, header, 36)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(RequestID(), Logger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "HTTP request", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])

	assert.Equal(t, "HTTP request with errors", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestInstrument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := metrics.New()
	router := gin.New()
	router.Use(Instrument(m))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestInstrumentNilMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Instrument(nil))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
