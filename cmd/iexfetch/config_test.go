package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iexfetch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("IEX_API_BASE_URL", "")
	t.Setenv("IEX_WS_BASE_URL", "")
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.iextrading.com/1.0", c.BaseURL)
	assert.Equal(t, "https://ws-api.iextrading.com/1.0", c.WebsocketURL)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 20, c.Stream.ReconnectLimit)
	assert.Equal(t, 150*time.Millisecond, c.Stream.ReconnectDelay)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("IEX_API_BASE_URL", "")
	t.Setenv("IEX_WS_BASE_URL", "")
	path := writeConfig(t, `
base_url: http://localhost:8080/1.0
timeout: 2s
format: csv
filter: [symbol, latestPrice]
log:
  level: debug
stream:
  reconnect_limit: 0
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/1.0", c.BaseURL)
	assert.Equal(t, 2*time.Second, c.Timeout)
	assert.Equal(t, "csv", c.Format)
	assert.Equal(t, []string{"symbol", "latestPrice"}, c.Filter)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 0, c.Stream.ReconnectLimit)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("IEX_API_BASE_URL", "http://env.test/1.0")
	t.Setenv("IEX_WS_BASE_URL", "")
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/1.0", c.BaseURL)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("IEX_API_BASE_URL", "")
	t.Setenv("IEX_WS_BASE_URL", "")
	_, err := LoadConfig(writeConfig(t, "format: xml\n"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Format", verrs[0].Field())

	_, err = LoadConfig(writeConfig(t, "timeout: [1\n"))
	assert.ErrorContains(t, err, "parse config")
}
