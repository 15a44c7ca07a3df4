// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is a point-in-time copy of the client state handed to renderers.
// It shares no memory with the client, so renderers may keep it.
type Snapshot struct {
	Authenticated bool
	Sessions      []Session
	Pagination    Pagination

	// ExpiresAt is the token expiry when the token carries one; it is only
	// informational.
	ExpiresAt time.Time
}

// HasExpiry reports whether ExpiresAt is known.
func (s Snapshot) HasExpiry() bool {
	return !s.ExpiresAt.IsZero()
}
