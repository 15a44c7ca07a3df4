// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the render-ready projection of a [Mission].
//
// All fields are display strings; empty strings mean "absent" and are drawn
// as a placeholder by the renderers.
type Session struct {
	ID         int64
	Category   string
	GPUVersion string
	URL        string
	Status     MissionStatus
	StartedAt  string
	UpdatedAt  string
}
