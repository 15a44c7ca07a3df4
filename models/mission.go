// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MissionStatus is the lifecycle state of a remote mission as reported by the
// API ("front_state").
type MissionStatus string

const (
	// MissionWaiting means the mission was accepted and is being provisioned.
	MissionWaiting MissionStatus = "waiting"

	// MissionRunning means the mission is up and its SSH endpoint is usable.
	MissionRunning MissionStatus = "running"
)

// ActiveMissionStates lists the states requested when listing sessions.
// Finished and failed missions are never shown.
var ActiveMissionStates = []MissionStatus{MissionWaiting, MissionRunning}

// Known reports whether s is one of the states the client renders specially.
// Every other value is treated as "other".
func (s MissionStatus) Known() bool {
	return s == MissionWaiting || s == MissionRunning
}

// String implements [fmt.Stringer].
func (s MissionStatus) String() string {
	return string(s)
}

// Mission is a single rented compute allocation exactly as the remote API
// returns it in GET /v1/user/missions.
//
// The record is owned by the remote service; the client never mutates it and
// converts it into a [Session] before rendering.
type Mission struct {
	// ID is the remote mission identifier, also used to close it.
	ID int64 `json:"id"`

	// Status is the current mission state.
	Status MissionStatus `json:"status"`

	// GPUVersion is the GPU model, e.g. "RTX4090".
	GPUVersion string `json:"gpu_version"`

	// GPUNum is the number of GPUs of GPUVersion attached to the mission.
	GPUNum int `json:"gpu_num"`

	// URLs is a JSON-encoded array of endpoint URLs embedded as a string,
	// e.g. `["ssh://root@host:2222"]`. Empty when no endpoint is assigned yet.
	URLs string `json:"urls"`

	// MissionCategory is the application category of the mission ("SSH", ...).
	MissionCategory string `json:"mission_category"`

	// StartedAt is an ISO 8601 timestamp. The zero instant
	// "0001-01-01T08:00:00+08:00" means the mission has not started.
	StartedAt string `json:"started_at"`

	// UpdatedAt is an ISO 8601 timestamp with the same sentinel convention.
	UpdatedAt string `json:"updated_at"`
}

// MissionPage is the data part of the list response.
type MissionPage struct {
	// List holds the missions of the requested page.
	List []Mission `json:"list"`

	// Total is the number of missions matching the filter across all pages.
	Total int `json:"total"`
}
