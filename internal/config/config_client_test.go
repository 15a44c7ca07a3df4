package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			NoticeDuration: 3 * time.Second,
			PageSize:       10,
			LogLevel:       "debug",
		},
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "gpu-missions.db"}},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported page size",
			mutate:  func(cfg *ClientConfig) { cfg.App.PageSize = 15 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero notice duration",
			mutate:  func(cfg *ClientConfig) { cfg.App.NoticeDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *ClientConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.False(t, cfg.App.ReportTransportErrors)
}

func TestGetClientConfig_InvalidFromEnv(t *testing.T) {
	t.Setenv("APP_PAGE_SIZE", "7")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
