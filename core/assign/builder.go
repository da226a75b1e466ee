package assign

import (
	"github.com/kaiyomaru/fieldassign/core/model"
	"github.com/kaiyomaru/fieldassign/core/solver"
)

// dayModel translates one day's eligible workers and resolved task slots into
// a binary-integer problem.
//
// Variable layout: x[w,s] = worker w works slot s, then y[w,a] = worker w is
// committed to area a. Duplicate schedule entries become independent slots.
type dayModel struct {
	workers []model.Worker
	slots   []model.ResolvedTask
	areas   []string
	areaOf  []int // slot index -> area index
	problem solver.Problem
}

// buildDayModel assembles the model. scores[w][s] must already include the
// worker's priority adjustment.
func buildDayModel(workers []model.Worker, slots []model.ResolvedTask, scores [][]float64) *dayModel {
	m := &dayModel{workers: workers, slots: slots, areaOf: make([]int, len(slots))}

	areaIdx := make(map[string]int)
	for s, slot := range slots {
		idx, ok := areaIdx[slot.Area]
		if !ok {
			idx = len(m.areas)
			areaIdx[slot.Area] = idx
			m.areas = append(m.areas, slot.Area)
		}
		m.areaOf[s] = idx
	}

	nx := len(workers) * len(slots)
	ny := len(workers) * len(m.areas)
	m.problem.NumVars = nx + ny
	m.problem.Objective = make([]float64, nx+ny)
	for w := range workers {
		for s := range slots {
			m.problem.Objective[m.xIndex(w, s)] = scores[w][s]
		}
	}

	// One area per worker per day.
	for w := range workers {
		terms := make([]solver.Term, len(m.areas))
		for a := range m.areas {
			terms[a] = solver.Term{Var: m.yIndex(w, a), Coef: 1}
		}
		m.problem.Constraints = append(m.problem.Constraints, solver.Constraint{Terms: terms, Bound: 1})
	}

	// A slot may only be worked by a worker committed to its area.
	for w := range workers {
		for s := range slots {
			m.problem.Constraints = append(m.problem.Constraints, solver.Constraint{
				Terms: []solver.Term{
					{Var: m.xIndex(w, s), Coef: 1},
					{Var: m.yIndex(w, m.areaOf[s]), Coef: -1},
				},
				Bound: 0,
			})
		}
	}

	// Capacity is an upper bound; understaffing is a valid outcome.
	for s, slot := range slots {
		terms := make([]solver.Term, len(workers))
		for w := range workers {
			terms[w] = solver.Term{Var: m.xIndex(w, s), Coef: 1}
		}
		m.problem.Constraints = append(m.problem.Constraints, solver.Constraint{
			Terms: terms,
			Bound: float64(slot.RequiredWorkers),
		})
	}

	return m
}

func (m *dayModel) xIndex(w, s int) int { return w*len(m.slots) + s }

func (m *dayModel) yIndex(w, a int) int {
	return len(m.workers)*len(m.slots) + w*len(m.areas) + a
}

// extract builds the per-task assignment lists from solved variable values.
// Worker order within a list follows eligible-worker iteration order.
// Duplicate display names merge into a single key.
func (m *dayModel) extract(values []bool) map[string][]string {
	res := make(map[string][]string, len(m.slots))
	for _, slot := range m.slots {
		if _, ok := res[slot.OriginalName]; !ok {
			res[slot.OriginalName] = []string{}
		}
	}
	for w := range m.workers {
		for s, slot := range m.slots {
			if values[m.xIndex(w, s)] {
				res[slot.OriginalName] = append(res[slot.OriginalName], m.workers[w].Name)
			}
		}
	}
	return res
}
