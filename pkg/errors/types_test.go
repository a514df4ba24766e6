package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorDoesNotRenderCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connect: connection refused")
	err := UpstreamUnavailable(cause)

	assert.Equal(t, "failed to fetch podcasts from the upstream API", err.Error())
	assert.NotContains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestAppErrorExtensions(t *testing.T) {
	err := UpstreamUnavailable(nil)
	assert.Equal(t, map[string]interface{}{"code": "UPSTREAM_UNAVAILABLE"}, err.Extensions())

	err.WithDetail("kind", "transport")
	assert.Equal(t, map[string]interface{}{
		"code": "UPSTREAM_UNAVAILABLE",
		"kind": "transport",
	}, err.Extensions())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "upstream", err: UpstreamUnavailable(nil), want: ErrCodeUpstreamUnavailable},
		{name: "invalid input", err: InvalidInput("bad"), want: ErrCodeInvalidInput},
		{name: "config", err: ConfigError("server.port", "out of range"), want: ErrCodeConfigInvalid},
		{name: "config required", err: ConfigRequired("upstream.api_url"), want: ErrCodeConfigRequired},
		{name: "wrapped app error", err: fmt.Errorf("outer: %w", New(ErrCodeAPITimeout, "slow")), want: ErrCodeAPITimeout},
		{name: "plain error", err: errors.New("boom"), want: ErrCodeInternal},
		{name: "nil", err: nil, want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestConfigErrorDetails(t *testing.T) {
	err := ConfigError("upstream.api_url", "must be an absolute URL")

	assert.Equal(t, ErrCodeConfigInvalid, err.Code)
	assert.Equal(t, "upstream.api_url", err.Details["key"])
	assert.Equal(t, "must be an absolute URL", err.Details["reason"])
	assert.Contains(t, err.Error(), "must be an absolute URL")
}

func TestConfigRequiredDetails(t *testing.T) {
	err := ConfigRequired("upstream.api_url")

	assert.Equal(t, ErrCodeConfigRequired, err.Code)
	assert.Equal(t, "upstream.api_url", err.Details["key"])
	assert.Equal(t, "configuration key 'upstream.api_url' is required", err.Error())
}
