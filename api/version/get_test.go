package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-gateway/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		build          types.BuildInfo
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "release build",
			build:          types.BuildInfo{Version: "1.2.0", GitCommit: "abc1234"},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"name":        "Podcast Search Gateway",
				"version":     "1.2.0",
				"commit":      "abc1234",
				"description": "GraphQL gateway for podcast search",
				"status":      "running",
			},
		},
		{
			name:           "development build",
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"name":    "Podcast Search Gateway",
				"version": "dev",
				"status":  "running",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handler := Get(tt.build)

			// Execute
			handler(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)

			for key, expectedValue := range tt.expectedBody {
				assert.Equal(t, expectedValue, response[key], "Key: %s", key)
			}
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine, &types.Dependencies{Build: types.BuildInfo{Version: "0.3.1"}})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"0.3.1"`)
}
