package api_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/health-api/internal/model"
)

func TestRejectsMissingAPIKey(t *testing.T) {
	resp := makeRequest(t, "GET", "/patients", nil, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "error", resp.Status)
}

func TestRejectsWrongAPIKey(t *testing.T) {
	resp := makeRequest(t, "GET", "/patients", nil, "not-the-key")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "error", resp.Status)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	resp := makeRequest(t, "GET", "/health", nil, "")
	require.True(t, resp.IsSuccess())

	var snapshot model.HealthSnapshot
	decodeData(t, resp, &snapshot)
	assert.Equal(t, "healthy", snapshot.Status)
	// Two programs are seeded at startup.
	assert.GreaterOrEqual(t, snapshot.Programs, 2)
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
