// Copyright © 2023 Sloan Childers
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host   string `env:"SINK_TEST_HOST" envDefault:"localhost"`
	Dither int    `env:"SINK_TEST_DITHER" envDefault:"0"`
}

func TestInitLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	assert.NoError(t, InitLogger("WARN"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, InitLogger("chatty"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLoadEnv(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, LoadEnv(cfg))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 0, cfg.Dither)

	t.Setenv("SINK_TEST_HOST", "10.0.0.5")
	t.Setenv("SINK_TEST_DITHER", "1")
	cfg = &testConfig{}
	require.NoError(t, LoadEnv(cfg))
	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 1, cfg.Dither)

	t.Setenv("SINK_TEST_DITHER", "yes")
	assert.Error(t, LoadEnv(&testConfig{}))
}

func TestLoadJson(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "tag.json")
	require.NoError(t, os.WriteFile(fileName, []byte(`{"Host": "ap.local", "Dither": 1}`), 0644))

	cfg := &struct {
		Host   string
		Dither int
	}{}
	require.NoError(t, LoadJson(fileName, cfg))
	assert.Equal(t, "ap.local", cfg.Host)
	assert.Equal(t, 1, cfg.Dither)

	assert.Error(t, LoadJson(filepath.Join(dir, "missing.json"), cfg))

	require.NoError(t, os.WriteFile(fileName, []byte(`{"Host":`), 0644))
	assert.Error(t, LoadJson(fileName, cfg))
}

func TestParam(t *testing.T) {
	router := chi.NewMux()
	router.Get("/tags/{mac}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Param(r, "mac")))
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tags/0000021F19003B1D", nil))
	assert.Equal(t, "0000021F19003B1D", w.Body.String())
}

func TestSendError(t *testing.T) {
	w := httptest.NewRecorder()
	SendError(w, errors.New("missing mac"), http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := map[string]string{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing mac", body["error"])
}

func TestSendPrettyJSON(t *testing.T) {
	w := httptest.NewRecorder()
	SendPrettyJSON(context.Background(), w, map[string]int{"uploads": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{\n    \"uploads\": 2\n}\n", w.Body.String())
}
