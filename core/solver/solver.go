// Package solver defines the binary-integer solver boundary used by the
// assignment optimizer, together with a branch-and-bound implementation.
package solver

import "context"

// Status reports the outcome of a solve call.
type Status int

const (
	// StatusOptimal means the returned solution is proven optimal.
	StatusOptimal Status = iota
	// StatusFeasible means a valid solution was found but optimality was
	// not proven (search budget exhausted).
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
	// StatusError means the solver failed internally.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "error"
	}
}

// Term is a single coefficient of a linear constraint.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is a linear inequality sum(Coef*x) <= Bound over binary
// variables.
type Constraint struct {
	Terms []Term
	Bound float64
}

// Problem is a maximization problem over binary variables with linear
// inequality constraints.
type Problem struct {
	NumVars     int
	Objective   []float64
	Constraints []Constraint
}

// Solution holds variable values and the achieved objective.
type Solution struct {
	Status    Status
	Values    []bool
	Objective float64
}

// Solver solves binary-integer maximization problems. Implementations must
// honor context cancellation.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Solution, error)
}

// ObjectiveOf evaluates the problem objective for the given values.
func ObjectiveOf(p Problem, values []bool) float64 {
	var obj float64
	for i, set := range values {
		if set {
			obj += p.Objective[i]
		}
	}
	return obj
}
