package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, pattern string, content []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfig(t, "config-*.json", data)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs replace earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{PageSize: 10, LogLevel: "debug"}},
		&StructuredConfig{App: App{PageSize: 50}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.App.PageSize)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.App.NoticeDuration)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.Equal(t, "gpu-missions.db", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_PAGE_SIZE", "20")
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 20, b.configs[0].App.PageSize)
	assert.Equal(t, "https://env.example.com", b.configs[0].Adapter.HTTPAddress)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable env value is
// recorded in b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_PAGE_SIZE", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&StructuredConfig{App: App{LogLevel: "warn"}})
	require.Len(t, b.configs, 1)
	assert.Equal(t, "warn", b.configs[0].App.LogLevel)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no source names a config file.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile(nil)

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.LogLevel = "info"
	payload.Adapter.HTTPAddress = "https://file.example.com"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile(nil)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "info", b.configs[1].App.LogLevel)
	assert.Equal(t, "https://file.example.com", b.configs[1].Adapter.HTTPAddress)
}

func TestWithFile_FlagPathWins(t *testing.T) {
	envPayload := StructuredFileConfig{}
	envPayload.App.LogLevel = "from-env-path"
	flagPayload := StructuredFileConfig{}
	flagPayload.App.LogLevel = "from-flag-path"

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: writeTempJSONConfig(t, envPayload)})
	b.withFile(&StructuredConfig{ConfigFilePath: writeTempJSONConfig(t, flagPayload)})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-flag-path", b.configs[1].App.LogLevel)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})
	b.withFile(nil)

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence checks defaults < env < file < flags.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	filePath := writeTempConfig(t, "config-*.yaml", []byte(
		"app:\n  page_size: 20\n  log_level: info\nadapter:\n  request_timeout: 5s\n"))

	t.Setenv("APP_PAGE_SIZE", "50")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("CONFIG", filePath)

	flagCfg := &StructuredConfig{App: App{LogLevel: "warn"}}

	cfg, err := GetStructuredConfig(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.App.PageSize, "file overrides env")
	assert.Equal(t, "warn", cfg.App.LogLevel, "flags override file")
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.HTTPAddress, "defaults fill the rest")
}
