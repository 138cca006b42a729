package soilgrids

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/rainharvest-service/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, timeout, discardLogger(), observability.NewMetricsForTesting())
}

func TestClient_ClayContent_Success(t *testing.T) {
	clayPayload := `{"depths":[{"label":"15-30cm","values":{"mean":251}}],"unit_measure":{"mapped_units":"g/kg"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/soilgrids/v2.0/properties/query", r.URL.Path)
		assert.Equal(t, "72.8777", r.URL.Query().Get("lon"))
		assert.Equal(t, "19.076", r.URL.Query().Get("lat"))
		assert.Equal(t, "clay", r.URL.Query().Get("property"))
		assert.Equal(t, "15-30cm", r.URL.Query().Get("depth"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"properties":{"clay":` + clayPayload + `}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	clay, err := c.ClayContent(context.Background(), 19.076, 72.8777)
	require.NoError(t, err)

	assert.JSONEq(t, clayPayload, string(clay))
}

func TestClient_ClayContent_MissingClaySection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"properties": map[string]any{}}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	clay, err := c.ClayContent(context.Background(), 19.076, 72.8777)
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(clay))
}

func TestClient_ClayContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.ClayContent(context.Background(), 19.076, 72.8777)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_ClayContent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.ClayContent(context.Background(), 19.076, 72.8777)
	require.Error(t, err)
}
