package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)

	tests := []struct {
		name string
		raw  string
		loc  *time.Location
		want string
	}{
		{name: "unset sentinel", raw: "0001-01-01T08:00:00+08:00", loc: time.UTC, want: ""},
		{name: "zero utc", raw: "0001-01-01T00:00:00Z", loc: time.UTC, want: ""},
		{name: "empty", raw: "", loc: time.UTC, want: ""},
		{name: "garbage", raw: "yesterday", loc: time.UTC, want: ""},
		{name: "converted to utc", raw: "2024-05-01T10:00:00+08:00", loc: time.UTC, want: "2024-05-01 02:00:00"},
		{name: "kept in zone", raw: "2024-05-01T10:00:00+08:00", loc: shanghai, want: "2024-05-01 10:00:00"},
		{name: "fractional seconds", raw: "2024-05-01T10:00:00.123456+08:00", loc: shanghai, want: "2024-05-01 10:00:00"},
		{name: "surrounding spaces", raw: " 2024-12-31T23:59:59Z ", loc: time.UTC, want: "2024-12-31 23:59:59"},
		{name: "no offset is local", raw: "2024-05-01T10:00:00", loc: shanghai, want: "2024-05-01 10:00:00"},
		{name: "no offset fractional", raw: "2024-05-01T10:00:00.250", loc: shanghai, want: "2024-05-01 10:00:00"},
		{name: "no seconds", raw: "2024-05-01T10:00", loc: shanghai, want: "2024-05-01 10:00:00"},
		{name: "offset without colon", raw: "2024-05-01T10:00:00+0800", loc: time.UTC, want: "2024-05-01 02:00:00"},
		{name: "date only is utc", raw: "2024-05-01", loc: time.UTC, want: "2024-05-01 00:00:00"},
		{name: "zero without offset in utc", raw: "0001-01-01T00:00:00", loc: time.UTC, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.raw, tt.loc))
		})
	}
}

func TestFormatTimestamp_NilLocationUsesLocal(t *testing.T) {
	raw := "2024-05-01T10:00:00+08:00"
	parsed, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)

	assert.Equal(t, parsed.In(time.Local).Format(TimestampLayout), FormatTimestamp(raw, nil))
}

func TestFirstURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "single", raw: `["ssh://root@host:2222"]`, want: "ssh://root@host:2222"},
		{name: "many", raw: `["ssh://a","ssh://b"]`, want: "ssh://a"},
		{name: "empty string", raw: "", want: ""},
		{name: "empty array", raw: "[]", want: ""},
		{name: "malformed", raw: `["ssh://a"`, want: ""},
		{name: "not an array", raw: `"ssh://a"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstURL(tt.raw))
		})
	}
}

func TestToSession(t *testing.T) {
	m := models.Mission{
		ID:              7,
		Status:          models.MissionRunning,
		GPUVersion:      "RTX4090",
		GPUNum:          2,
		URLs:            `["ssh://root@host:2222"]`,
		MissionCategory: "SSH",
		StartedAt:       "2024-05-01T10:00:00Z",
		UpdatedAt:       "0001-01-01T08:00:00+08:00",
	}

	assert.Equal(t, models.Session{
		ID:         7,
		Category:   "SSH",
		GPUVersion: "RTX4090 * 2",
		URL:        "ssh://root@host:2222",
		Status:     models.MissionRunning,
		StartedAt:  "2024-05-01 10:00:00",
		UpdatedAt:  "",
	}, ToSession(m, time.UTC))
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "--", DisplayValue(""))
	assert.Equal(t, "--", DisplayValue("   "))
	assert.Equal(t, "SSH", DisplayValue("SSH"))
}
