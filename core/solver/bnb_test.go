package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", StatusOptimal.String())
	assert.Equal(t, "feasible", StatusFeasible.String())
	assert.Equal(t, "infeasible", StatusInfeasible.String())
	assert.Equal(t, "error", StatusError.String())
}

func TestSolveEmptyProblem(t *testing.T) {
	sol, err := NewBranchAndBound().Solve(context.Background(), Problem{})
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.Zero(t, sol.Objective)
}

func TestSolveObjectiveMismatch(t *testing.T) {
	p := Problem{NumVars: 3, Objective: []float64{1, 2}}
	sol, err := NewBranchAndBound().Solve(context.Background(), p)
	require.Error(t, err)
	assert.Equal(t, StatusError, sol.Status)
}

func TestSolveKnapsackStyle(t *testing.T) {
	// max 5a + 4b + 3c subject to a+b <= 1 and b+c <= 1.
	p := Problem{
		NumVars:   3,
		Objective: []float64{5, 4, 3},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 1},
			{Terms: []Term{{Var: 1, Coef: 1}, {Var: 2, Coef: 1}}, Bound: 1},
		},
	}
	sol, err := NewBranchAndBound().Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.Equal(t, []bool{true, false, true}, sol.Values)
	assert.InDelta(t, 8, sol.Objective, 1e-6)
}

func TestSolveNegativeObjectiveStaysZero(t *testing.T) {
	p := Problem{
		NumVars:   2,
		Objective: []float64{-3, -7},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 2},
		},
	}
	sol, err := NewBranchAndBound().Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.Equal(t, []bool{false, false}, sol.Values)
	assert.Zero(t, sol.Objective)
}

func TestSolveLinkingConstraints(t *testing.T) {
	// Assignment shape: x0 may only be set together with y2 (x - y <= 0),
	// and at most one of y2, y3.
	p := Problem{
		NumVars:   4,
		Objective: []float64{10, 6, 0, 0},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coef: 1}, {Var: 2, Coef: -1}}, Bound: 0},
			{Terms: []Term{{Var: 1, Coef: 1}, {Var: 3, Coef: -1}}, Bound: 0},
			{Terms: []Term{{Var: 2, Coef: 1}, {Var: 3, Coef: 1}}, Bound: 1},
		},
	}
	sol, err := NewBranchAndBound().Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.True(t, sol.Values[0])
	assert.True(t, sol.Values[2])
	assert.False(t, sol.Values[1])
	assert.InDelta(t, 10, sol.Objective, 1e-6)
}

func TestSolveNodeBudgetReturnsFeasible(t *testing.T) {
	p := Problem{
		NumVars:   2,
		Objective: []float64{1, 1},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 1.5},
		},
	}
	s := &BranchAndBound{MaxNodes: 1}
	sol, err := s.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StatusFeasible, sol.Status)
}

func TestSolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Problem{NumVars: 1, Objective: []float64{1}}
	sol, err := NewBranchAndBound().Solve(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusError, sol.Status)
}

func TestSolveRelaxationFailure(t *testing.T) {
	boom := errors.New("relaxation blew up")
	orig := lpSolve
	lpSolve = func(Problem, []int8) ([]float64, float64, error) {
		return nil, 0, boom
	}
	defer func() { lpSolve = orig }()

	p := Problem{NumVars: 1, Objective: []float64{1}}
	sol, err := NewBranchAndBound().Solve(context.Background(), p)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StatusError, sol.Status)
}

func TestSolveDeterministic(t *testing.T) {
	p := Problem{
		NumVars:   4,
		Objective: []float64{3, 3, 2, 2},
		Constraints: []Constraint{
			{Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}, {Var: 2, Coef: 1}}, Bound: 2},
			{Terms: []Term{{Var: 1, Coef: 1}, {Var: 3, Coef: 1}}, Bound: 1},
		},
	}
	first, err := NewBranchAndBound().Solve(context.Background(), p)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NewBranchAndBound().Solve(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, first.Values, again.Values)
		assert.Equal(t, first.Objective, again.Objective)
	}
}
