package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {
			"storage_passphrase": "secret",
			"notice_duration": "5s",
			"page_size": 20,
			"report_transport_errors": true,
			"log_level": "info",
			"log_path": "/tmp/gpu.log"
		},
		"storage": { "db": { "dsn": "missions.db" } },
		"adapter": { "http_address": "https://api.example.com", "request_timeout": "10s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.StoragePassphrase)
	assert.Equal(t, 5*time.Second, cfg.App.NoticeDuration)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.True(t, cfg.App.ReportTransportErrors)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/gpu.log", cfg.App.LogPath)
	assert.Equal(t, "missions.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yml")
	body := `
app:
  notice_duration: 2s
  page_size: 50
storage:
  db:
    dsn: other.db
adapter:
  http_address: https://yaml.example.com
  request_timeout: 1000000000
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.App.NoticeDuration)
	assert.Equal(t, 50, cfg.App.PageSize)
	assert.Equal(t, "other.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://yaml.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Malformed(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{not valid json"), 0o600))
	_, err := parseFile(jsonPath)
	assert.ErrorContains(t, err, "error decoding json configs")

	yamlPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("app: [unclosed"), 0o600))
	_, err = parseFile(yamlPath)
	assert.ErrorContains(t, err, "error decoding yaml configs")
}

func TestParseFile_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":{"notice_duration":"soon"}}`), 0o600))

	_, err := parseFile(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1500`, want: 1500},
		{name: "invalid string", input: `"abc"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(3 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"3s"`, string(b))
}
