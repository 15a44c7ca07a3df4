package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissionStatus_Known(t *testing.T) {
	assert.True(t, MissionWaiting.Known())
	assert.True(t, MissionRunning.Known())
	assert.False(t, MissionStatus("failed").Known())
	assert.False(t, MissionStatus("").Known())
}
