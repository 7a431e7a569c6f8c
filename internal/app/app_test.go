package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/shaibs3/pagecatalog/internal/config"
	"github.com/shaibs3/pagecatalog/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(port string) *config.Config {
	return &config.Config{
		Port:        port,
		Environment: "test",
		LogLevel:    "info",
		RPSLimit:    1000,
		RPSBurst:    1000,
	}
}

func TestNewApp_Routes(t *testing.T) {
	a, err := NewApp(testConfig("0"), zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = a.provider.Close() }()

	for target, want := range map[string]int{
		"/health":                      http.StatusOK,
		"/metrics":                     http.StatusOK,
		"/v1/pages/hello-world":        http.StatusOK,
		"/v1/pages/nonexistent":        http.StatusNotFound,
		"/catalog":                     http.StatusOK,
		"/examples/layout/grid-layout": http.StatusOK,
	} {
		w := httptest.NewRecorder()
		a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, want, w.Code, target)
	}
}

func TestNewApp_SQLiteBackend(t *testing.T) {
	cfg := testConfig("0")
	cfg.CatalogDBConfig = `{"db_type":"sqlite","extra_details":{}}`

	a, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = a.provider.Close() }()

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories/react-hooks", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"use-state-counter"`)
}

func TestNewApp_InvalidProviderConfig(t *testing.T) {
	var created *telemetry.Telemetry
	orig := newTelemetry
	newTelemetry = func(logger *zap.Logger) (*telemetry.Telemetry, error) {
		tel, err := orig(logger)
		created = tel
		return tel, err
	}
	t.Cleanup(func() { newTelemetry = orig })

	cfg := testConfig("0")
	cfg.CatalogDBConfig = `{"db_type":"mongo"}`

	_, err := NewApp(cfg, zap.NewNop())
	require.ErrorContains(t, err, "unsupported database type")

	// already shut down by NewApp, so a second shutdown reports the closed reader
	require.NotNil(t, created)
	require.Error(t, created.Shutdown(context.Background()))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	a, err := NewApp(testConfig(strconv.Itoa(port)), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
