package config

import (
	"flag"
	"time"
)

// NewFlagSet registers all configuration flags on a new flag set and returns
// it together with the config the parsed values are written into.
//
// The flag set is not parsed here: the caller owns argument parsing (the
// command tree adds it with AddGoFlagSet). Unset flags leave zero values, so
// they never override lower-priority sources when merged.
//
// Flags:
//
//	-a                        remote API base URL
//	-request-timeout          request timeout (e.g. "30s", "1m")
//	-d                        SQLite database file
//	-c / -config              JSON or YAML config file path
//	-storage-passphrase       passphrase sealing the stored token
//	-notice-duration          how long notices stay visible (e.g. "3s")
//	-page-size                initial page size (10, 20 or 50)
//	-report-transport-errors  show network failures as notices
//	-log-level                log level (debug, info, warn, error)
//	-log-path                 log file path
func NewFlagSet(name string) (*flag.FlagSet, *StructuredConfig) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Remote API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database file")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&cfg.App.StoragePassphrase, "storage-passphrase", "", "Passphrase sealing the stored token")
	fs.DurationVar(&cfg.App.NoticeDuration, "notice-duration", time.Duration(0), "Notice display duration (e.g., 3s)")
	fs.IntVar(&cfg.App.PageSize, "page-size", 0, "Initial page size (10, 20 or 50)")
	fs.BoolVar(&cfg.App.ReportTransportErrors, "report-transport-errors", false, "Show network failures as notices")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogPath, "log-path", "", "Log file path")

	return fs, cfg
}
