package assign

import "github.com/kaiyomaru/fieldassign/core/model"

// Scoring weights. Shortfalls are penalized more steeply than surpluses are
// rewarded, which biases the optimizer toward meeting minimum requirements.
const (
	skillBase      = 30.0
	skillSurplus   = 5.0
	skillDeficit   = 20.0
	strengthBase   = 20.0
	strengthBonus  = 3.0
	strengthMalus  = 15.0
	vesselBase     = 15.0
	vesselSurplus  = 2.0
	vesselDeficit  = 10.0
	navigationBase = 10.0
	navigationGain = 2.0
	noNavigator    = -30.0

	// analysisPenalty is subtracted from every field score of a worker
	// flagged for analysis priority.
	analysisPenalty = -20.0
)

// Score computes the suitability of a worker for a task. It is pure and
// deterministic; higher is better.
func Score(w model.Worker, t model.Task) float64 {
	score := 0.0

	if d := float64(w.Skill - t.RequiredSkill); d >= 0 {
		score += skillBase + d*skillSurplus
	} else {
		score -= -d * skillDeficit
	}

	if d := float64(w.Strength - t.RequiredStrength); d >= 0 {
		score += strengthBase + d*strengthBonus
	} else {
		score -= -d * strengthMalus
	}

	if t.RequiresVessel() {
		if d := float64(boolInt(w.Vessel) - t.VesselWork); d >= 0 {
			score += vesselBase + d*vesselSurplus
		} else {
			score -= -d * vesselDeficit
		}
	}

	if t.RequiresNavigation() {
		if w.Navigate {
			score += navigationBase + navigationGain*float64(boolInt(w.Navigate))
		} else {
			score += noNavigator
		}
	}

	return score
}

// PriorityPenalty returns the flat adjustment applied on top of Score by the
// day optimizer. Analysis-priority workers stay assignable but score lower on
// every field task.
func PriorityPenalty(w model.Worker) float64 {
	if w.AnalysisPriority {
		return analysisPenalty
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
