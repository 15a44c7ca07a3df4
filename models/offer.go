// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// BillingTypeTime is the mission_billing_type used for SSH sessions.
	BillingTypeTime = "time"

	// CategorySSH is the mission_category used for SSH sessions.
	CategorySSH = "SSH"
)

// Offer is a priced GPU configuration returned by the cheapest-price lookup.
// It is used once to build a creation request and then discarded.
type Offer struct {
	// GPUVersion identifies the GPU model and is copied into the creation
	// request.
	GPUVersion string `json:"gpu_version"`

	// IsDeprecated marks an offer that is being phased out.
	IsDeprecated bool `json:"is_deprecated"`

	// IsDeprecatedSuperNode marks an offer phased out on super nodes.
	IsDeprecatedSuperNode bool `json:"is_deprecated_super_node"`

	// QuickStart marks an offer that provisions with lower startup latency.
	QuickStart bool `json:"quick_start"`
}

// PriceQuery holds the filter of the cheapest-price lookup.
type PriceQuery struct {
	BillingType string
	Category    string
}

// SSHPriceQuery returns the fixed lookup used when creating SSH sessions.
func SSHPriceQuery() PriceQuery {
	return PriceQuery{BillingType: BillingTypeTime, Category: CategorySSH}
}
