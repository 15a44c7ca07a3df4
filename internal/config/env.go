// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the environment layer of the client configuration, for
// example APP_PAGE_SIZE, APP_REPORT_TRANSPORT_ERRORS or ADAPTER_ADDRESS.
// Variables that are not set leave their fields zero so the merge keeps the
// value from the defaults layer.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read client settings from environment: %w", err)
	}
	return nil
}
