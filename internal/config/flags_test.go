package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlagSet_ParsesAllFlags(t *testing.T) {
	fs, cfg := NewFlagSet("test")

	err := fs.Parse([]string{
		"-a", "https://flags.example.com",
		"-request-timeout", "15s",
		"-d", "flags.db",
		"-config", "/etc/gpu.yaml",
		"-storage-passphrase", "pass",
		"-notice-duration", "4s",
		"-page-size", "20",
		"-report-transport-errors",
		"-log-level", "info",
		"-log-path", "/tmp/gpu.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://flags.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/gpu.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "pass", cfg.App.StoragePassphrase)
	assert.Equal(t, 4*time.Second, cfg.App.NoticeDuration)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.True(t, cfg.App.ReportTransportErrors)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/gpu.log", cfg.App.LogPath)
}

func TestNewFlagSet_ShortConfigAlias(t *testing.T) {
	fs, cfg := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"-c", "cfg.json"}))
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
}

// TestNewFlagSet_Unset verifies that unset flags leave zero values which do
// not override other sources.
func TestNewFlagSet_Unset(t *testing.T) {
	fs, cfg := NewFlagSet("test")
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestNewFlagSet_BadValue(t *testing.T) {
	fs, _ := NewFlagSet("test")
	fs.SetOutput(nopWriter{})
	assert.Error(t, fs.Parse([]string{"-page-size", "lots"}))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
