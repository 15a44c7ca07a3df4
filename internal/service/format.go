// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gpu-missions/models"
)

// TimestampLayout is the display format of session timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// EmptyCell is drawn in place of absent values.
const EmptyCell = "--"

// Accepted ISO 8601 forms. Layouts without an offset are read in the
// render zone; a bare date is UTC midnight.
var (
	offsetLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04Z07:00",
		"2006-01-02",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

// FormatTimestamp renders an ISO 8601 timestamp in loc (time.Local when nil).
// The unset sentinel "0001-01-01T08:00:00+08:00" is the zero instant and,
// like empty or unparseable input, renders as "".
func FormatTimestamp(raw string, loc *time.Location) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}

	t, ok := parseTimestamp(raw, loc)
	if !ok || t.IsZero() {
		return ""
	}
	return t.In(loc).Format(TimestampLayout)
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FirstURL returns the first element of a JSON-encoded string array, or ""
// when the input is empty, malformed or an empty array.
func FirstURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil || len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// ToSession converts the wire record into its render-ready form.
func ToSession(m models.Mission, loc *time.Location) models.Session {
	return models.Session{
		ID:         m.ID,
		Category:   m.MissionCategory,
		GPUVersion: fmt.Sprintf("%s * %d", m.GPUVersion, m.GPUNum),
		URL:        FirstURL(m.URLs),
		Status:     m.Status,
		StartedAt:  FormatTimestamp(m.StartedAt, loc),
		UpdatedAt:  FormatTimestamp(m.UpdatedAt, loc),
	}
}

// DisplayValue returns v, or [EmptyCell] when v is empty.
func DisplayValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return EmptyCell
	}
	return v
}
