package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "https://electrek.co", cfg.Source.BaseURL)
	assert.Equal(t, 1000, cfg.Stats.PageSize)
	assert.Equal(t, 30*24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, 2*time.Second, cfg.Scrape.PageDelay)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.False(t, cfg.Proxy.Enabled)
	assert.Equal(t, "chat", cfg.Classifier.Mode)
	assert.Equal(t, "text-embedding-3-large", cfg.Classifier.EmbeddingModel)
	assert.Equal(t, 60, cfg.Classifier.RequestsPerMinute)
	assert.Equal(t, 6*time.Hour, cfg.Schedule.Interval)
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_PROXY_PASSWORD", "s3cret")
	t.Setenv("TEST_OPENAI_KEY", "sk-test")

	raw := `
proxy:
  enabled: true
  username: user
  password: ${TEST_PROXY_PASSWORD}
  host: proxy.local
  port: 8000
  count: 3
classifier:
  api_key: $TEST_OPENAI_KEY
scrape:
  page_delay: 250ms
`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Proxy.Password)
	assert.Equal(t, 3, cfg.Proxy.Count)
	assert.Equal(t, "sk-test", cfg.Classifier.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Scrape.PageDelay)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("database: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  host: db\n  dbname: news\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user= password= dbname=news sslmode=disable", cfg.Database.DSN())
}

func TestSourceConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, SourceConfig{Timezone: "Nowhere/Invalid"}.Location())
	assert.Equal(t, time.UTC, SourceConfig{Timezone: "UTC"}.Location())
}
