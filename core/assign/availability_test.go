package assign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaiyomaru/fieldassign/core/model"
)

func TestEligibleWorkers(t *testing.T) {
	workers := []model.Worker{
		{Name: "anyday"},
		{Name: "montue", Weekdays: []time.Weekday{time.Monday, time.Tuesday}},
		{Name: "fri", Weekdays: []time.Weekday{time.Friday}},
	}

	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)

	mon := EligibleWorkers(workers, monday)
	if assert.Len(t, mon, 2) {
		assert.Equal(t, "anyday", mon[0].Name)
		assert.Equal(t, "montue", mon[1].Name)
	}

	wed := EligibleWorkers(workers, wednesday)
	if assert.Len(t, wed, 1) {
		assert.Equal(t, "anyday", wed[0].Name)
	}
}
