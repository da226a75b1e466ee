package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerAvailableOn(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)

	unrestricted := Worker{Name: "a"}
	assert.True(t, unrestricted.AvailableOn(monday))
	assert.True(t, unrestricted.AvailableOn(wednesday))

	monTue := Worker{Name: "b", Weekdays: []time.Weekday{time.Monday, time.Tuesday}}
	assert.True(t, monTue.AvailableOn(monday))
	assert.False(t, monTue.AvailableOn(wednesday))
}

func TestTaskRequirementThresholds(t *testing.T) {
	below := Task{VesselWork: 2, Navigation: 1}
	assert.False(t, below.RequiresVessel())
	assert.False(t, below.RequiresNavigation())

	at := Task{VesselWork: 3, Navigation: 3}
	assert.True(t, at.RequiresVessel())
	assert.True(t, at.RequiresNavigation())
}

func TestUnregisteredTaskDefaults(t *testing.T) {
	task := UnregisteredTask("mystery job")
	assert.Equal(t, "mystery job", task.Name)
	assert.Equal(t, UnknownArea, task.Area)
	assert.Equal(t, 1, task.RequiredWorkers)
	assert.Equal(t, 3, task.RequiredSkill)
	assert.Equal(t, 3, task.RequiredStrength)
	assert.False(t, task.RequiresVessel())
	assert.False(t, task.RequiresNavigation())
	assert.InDelta(t, 1.0, task.Duration, 1e-9)
}
