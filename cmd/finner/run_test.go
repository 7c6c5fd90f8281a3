package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/finnews/finner/config"
	"github.com/finnews/finner/internal"
	"github.com/finnews/finner/pkg/models"
	"github.com/finnews/finner/pkg/testutils"
)

func init() {
	log = internal.GetLogger()
}

func TestWriteConfig(t *testing.T) {
	cfg := &config.Config{
		NLP:     config.NLPConfig{ServerURL: "http://nlp:5557", Language: "en", Timeout: 30 * time.Second},
		Dataset: config.DatasetConfig{Path: "data/articles.csv"},
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 5000},
		Log:     config.LogConfig{Level: "info"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg))

	var roundTrip map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &roundTrip))
	assert.Equal(t, "http://nlp:5557", roundTrip["nlp"]["server_url"])
	assert.Equal(t, "data/articles.csv", roundTrip["dataset"]["path"])
	assert.Equal(t, 5000, roundTrip["server"]["port"])
}

func TestNewAppStateDegraded(t *testing.T) {
	cfg := &config.Config{
		Dataset: config.DatasetConfig{Path: filepath.Join(t.TempDir(), "missing.csv")},
	}

	appState := NewAppState(context.Background(), cfg)

	assert.ErrorIs(t, models.StartupError(appState.Extractor), models.ErrBackendUnavailable)
	assert.ErrorIs(t, models.StartupError(appState.Articles), models.ErrDatasetUnavailable)
	assert.Same(t, cfg, appState.Config)
}

func TestNewAppState(t *testing.T) {
	nlp := testutils.NewNLPServer(t, testutils.FinanceTerms)
	cfg, err := testutils.NewTestConfig()
	require.NoError(t, err)
	cfg.NLP.ServerURL = nlp.URL

	appState := NewAppState(context.Background(), cfg)

	assert.NoError(t, models.StartupError(appState.Extractor))
	require.NoError(t, models.StartupError(appState.Articles))
	assert.Equal(t, 8, appState.Articles.Len())
}
