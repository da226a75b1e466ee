package model

// RequirementThreshold is the graded value at which vessel-work and
// navigation requirements become active for a task.
const RequirementThreshold = 3

// UnknownArea groups tasks that have no master-registry entry.
const UnknownArea = "unknown"

// Task is a master-registry description of a recurring job type.
type Task struct {
	ID               int     `json:"id"`
	Name             string  `json:"name" validate:"required"`
	Area             string  `json:"area" validate:"required"`
	RequiredWorkers  int     `json:"required_workers" validate:"gte=1"`
	RequiredSkill    int     `json:"required_skill" validate:"gte=0"`
	RequiredStrength int     `json:"required_strength" validate:"gte=0"`
	Urgency          int     `json:"urgency"` // reserved for future scoring use
	VesselWork       int     `json:"vessel_work"`
	Navigation       int     `json:"navigation"`
	Duration         float64 `json:"duration"` // hours
}

// RequiresVessel reports whether the task demands on-board capability.
func (t Task) RequiresVessel() bool { return t.VesselWork >= RequirementThreshold }

// RequiresNavigation reports whether the task demands a navigator.
func (t Task) RequiresNavigation() bool { return t.Navigation >= RequirementThreshold }

// UnregisteredTask returns the default definition used when a scheduled
// name matches nothing in the registry. One worker, mid requirements,
// graded flags below the activation threshold.
func UnregisteredTask(name string) Task {
	return Task{
		Name:             name,
		Area:             UnknownArea,
		RequiredWorkers:  1,
		RequiredSkill:    3,
		RequiredStrength: 3,
		Urgency:          3,
		VesselWork:       1,
		Navigation:       1,
		Duration:         1.0,
	}
}
