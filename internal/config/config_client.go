package config

import (
	"fmt"
	"time"
)

// ClientApp holds client behaviour settings derived from the structured
// config.
type ClientApp struct {
	// StoragePassphrase seals the stored token when non-empty.
	StoragePassphrase string
	// NoticeDuration is how long a notice stays visible.
	NoticeDuration time.Duration `validate:"gt=0"`
	// PageSize is the initial page size.
	PageSize int `validate:"oneof=10 20 50"`
	// ReportTransportErrors turns swallowed network failures into notices.
	ReportTransportErrors bool
	// LogLevel is the zerolog level name.
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	// LogPath is the log file path; empty selects the default location.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote API base URL.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used by the client.
	DSN string `validate:"required"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote API address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] using flagCfg as the
// highest-priority source, maps the fields relevant to the client runtime,
// and validates the resulting [ClientConfig].
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			StoragePassphrase:     cfg.App.StoragePassphrase,
			NoticeDuration:        cfg.App.NoticeDuration,
			PageSize:              cfg.App.PageSize,
			ReportTransportErrors: cfg.App.ReportTransportErrors,
			LogLevel:              cfg.App.LogLevel,
			LogPath:               cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
