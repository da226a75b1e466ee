package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiyomaru/fieldassign/core/model"
)

func buildTestModel(t *testing.T) *dayModel {
	t.Helper()
	workers := []model.Worker{{Name: "w0"}, {Name: "w1"}}
	slots := []model.ResolvedTask{
		{Task: model.Task{Name: "a", Area: "harbor", RequiredWorkers: 2}, OriginalName: "a"},
		{Task: model.Task{Name: "b", Area: "lake", RequiredWorkers: 1}, OriginalName: "b"},
		{Task: model.Task{Name: "c", Area: "harbor", RequiredWorkers: 1}, OriginalName: "c"},
	}
	scores := [][]float64{{1, 2, 3}, {4, 5, 6}}
	return buildDayModel(workers, slots, scores)
}

func TestBuildDayModelLayout(t *testing.T) {
	m := buildTestModel(t)

	assert.Equal(t, []string{"harbor", "lake"}, m.areas)
	assert.Equal(t, []int{0, 1, 0}, m.areaOf)

	// 2 workers * 3 slots x-vars, then 2 workers * 2 areas y-vars.
	require.Equal(t, 10, m.problem.NumVars)
	require.Len(t, m.problem.Objective, 10)
	assert.Equal(t, 1.0, m.problem.Objective[m.xIndex(0, 0)])
	assert.Equal(t, 6.0, m.problem.Objective[m.xIndex(1, 2)])
	// Area commitment carries no objective weight.
	assert.Equal(t, 0.0, m.problem.Objective[m.yIndex(0, 0)])
	assert.Equal(t, 0.0, m.problem.Objective[m.yIndex(1, 1)])
}

func TestBuildDayModelConstraints(t *testing.T) {
	m := buildTestModel(t)

	// 2 one-area rows + 2*3 linking rows + 3 capacity rows.
	require.Len(t, m.problem.Constraints, 11)

	for w := 0; w < 2; w++ {
		area := m.problem.Constraints[w]
		assert.Equal(t, 1.0, area.Bound)
		require.Len(t, area.Terms, 2)
		for a, term := range area.Terms {
			assert.Equal(t, m.yIndex(w, a), term.Var)
			assert.Equal(t, 1.0, term.Coef)
		}
	}

	link := m.problem.Constraints[2]
	require.Len(t, link.Terms, 2)
	assert.Equal(t, m.xIndex(0, 0), link.Terms[0].Var)
	assert.Equal(t, 1.0, link.Terms[0].Coef)
	assert.Equal(t, m.yIndex(0, 0), link.Terms[1].Var)
	assert.Equal(t, -1.0, link.Terms[1].Coef)
	assert.Equal(t, 0.0, link.Bound)

	capacity := m.problem.Constraints[8]
	require.Len(t, capacity.Terms, 2)
	assert.Equal(t, 2.0, capacity.Bound)
	assert.Equal(t, m.xIndex(0, 0), capacity.Terms[0].Var)
	assert.Equal(t, m.xIndex(1, 0), capacity.Terms[1].Var)
}

func TestExtract(t *testing.T) {
	m := buildTestModel(t)

	values := make([]bool, m.problem.NumVars)
	values[m.xIndex(0, 0)] = true
	values[m.xIndex(1, 0)] = true
	values[m.xIndex(1, 2)] = true

	got := m.extract(values)
	assert.Equal(t, map[string][]string{
		"a": {"w0", "w1"},
		"b": {},
		"c": {"w1"},
	}, got)
}

func TestExtractMergesDuplicateNames(t *testing.T) {
	workers := []model.Worker{{Name: "w0"}, {Name: "w1"}}
	slots := []model.ResolvedTask{
		{Task: model.Task{Name: "a", Area: "harbor", RequiredWorkers: 1}, OriginalName: "patrol"},
		{Task: model.Task{Name: "a", Area: "harbor", RequiredWorkers: 1}, OriginalName: "patrol"},
	}
	m := buildDayModel(workers, slots, [][]float64{{1, 1}, {1, 1}})

	values := make([]bool, m.problem.NumVars)
	values[m.xIndex(0, 0)] = true
	values[m.xIndex(1, 1)] = true

	got := m.extract(values)
	assert.Equal(t, map[string][]string{"patrol": {"w0", "w1"}}, got)
}
