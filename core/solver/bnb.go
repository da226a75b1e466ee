package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	defaultIntTol   = 1e-6
	defaultMaxNodes = 200000
	simplexTol      = 1e-7
)

// lpSolve points to the LP relaxation routine. It can be overridden in tests
// to simulate solver failures.
var lpSolve = solveRelaxation

// BranchAndBound solves binary-integer maximization problems by depth-first
// branch and bound, bounding each node with the simplex LP relaxation.
// The per-day assignment models are small and mostly bipartite, so the
// search stays shallow in practice.
type BranchAndBound struct {
	// IntTol is the integrality tolerance applied to relaxation values.
	IntTol float64
	// MaxNodes bounds the search; when exceeded the incumbent is returned
	// as feasible rather than optimal.
	MaxNodes int
}

// NewBranchAndBound returns a solver with default tolerances.
func NewBranchAndBound() *BranchAndBound {
	return &BranchAndBound{IntTol: defaultIntTol, MaxNodes: defaultMaxNodes}
}

type bnbNode struct {
	fixed []int8 // -1 free, 0 or 1 pinned
}

// Solve implements the Solver interface.
func (s *BranchAndBound) Solve(ctx context.Context, p Problem) (Solution, error) {
	if len(p.Objective) != p.NumVars {
		return Solution{Status: StatusError}, fmt.Errorf("objective has %d coefficients for %d variables", len(p.Objective), p.NumVars)
	}
	if p.NumVars == 0 {
		return Solution{Status: StatusOptimal}, nil
	}

	// The all-zero assignment is always feasible for <= constraints with
	// non-negative bounds, which is the only shape the builder emits.
	best := make([]bool, p.NumVars)
	bestObj := 0.0
	provenOptimal := true

	root := bnbNode{fixed: make([]int8, p.NumVars)}
	for i := range root.fixed {
		root.fixed[i] = -1
	}
	stack := []bnbNode{root}
	nodes := 0

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return Solution{Status: StatusError}, ctx.Err()
		default:
		}
		nodes++
		if nodes > s.maxNodes() {
			provenOptimal = false
			break
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		vals, bound, err := lpSolve(p, nd.fixed)
		if errors.Is(err, lp.ErrInfeasible) {
			continue
		}
		if err != nil {
			return Solution{Status: StatusError}, fmt.Errorf("lp relaxation: %w", err)
		}
		if bound <= bestObj+1e-9 {
			continue
		}

		branch := s.pickFractional(vals, nd.fixed)
		if branch < 0 {
			rounded := make([]bool, p.NumVars)
			for i, v := range vals {
				rounded[i] = v > 0.5
			}
			if obj := ObjectiveOf(p, rounded); obj > bestObj {
				best = rounded
				bestObj = obj
			}
			continue
		}

		zero := bnbNode{fixed: append([]int8(nil), nd.fixed...)}
		zero.fixed[branch] = 0
		one := bnbNode{fixed: append([]int8(nil), nd.fixed...)}
		one.fixed[branch] = 1
		// Explore the 1-branch first: for maximization it tends to hit
		// good incumbents early and tighten pruning.
		stack = append(stack, zero, one)
	}

	status := StatusOptimal
	if !provenOptimal {
		status = StatusFeasible
	}
	return Solution{Status: status, Values: best, Objective: bestObj}, nil
}

func (s *BranchAndBound) maxNodes() int {
	if s.MaxNodes > 0 {
		return s.MaxNodes
	}
	return defaultMaxNodes
}

func (s *BranchAndBound) intTol() float64 {
	if s.IntTol > 0 {
		return s.IntTol
	}
	return defaultIntTol
}

// pickFractional returns the free variable with the most fractional
// relaxation value, or -1 if the relaxation is integral.
func (s *BranchAndBound) pickFractional(vals []float64, fixed []int8) int {
	tol := s.intTol()
	branch := -1
	bestDist := 0.0
	for i, v := range vals {
		if fixed[i] >= 0 {
			continue
		}
		frac := v - math.Floor(v)
		if frac < tol || frac > 1-tol {
			continue
		}
		if dist := math.Abs(frac - 0.5); branch < 0 || 0.5-dist > bestDist {
			branch = i
			bestDist = 0.5 - dist
		}
	}
	return branch
}

// solveRelaxation maximizes the LP relaxation of p over [0,1] with the given
// pinned variables. It returns the full-length variable vector and the
// relaxation objective, an upper bound for every integer solution below this
// node.
func solveRelaxation(p Problem, fixed []int8) ([]float64, float64, error) {
	freeIdx := make([]int, 0, p.NumVars)
	pos := make([]int, p.NumVars) // var -> column in the LP, -1 if pinned
	fixedObj := 0.0
	for i := 0; i < p.NumVars; i++ {
		pos[i] = -1
		switch fixed[i] {
		case 1:
			fixedObj += p.Objective[i]
		case -1:
			pos[i] = len(freeIdx)
			freeIdx = append(freeIdx, i)
		}
	}

	nFree := len(freeIdx)
	if nFree == 0 {
		vals := pinnedValues(p.NumVars, fixed)
		for _, c := range p.Constraints {
			lhs := 0.0
			for _, t := range c.Terms {
				lhs += t.Coef * vals[t.Var]
			}
			if lhs > c.Bound+1e-9 {
				return nil, 0, lp.ErrInfeasible
			}
		}
		return vals, fixedObj, nil
	}

	// Standard form min cᵀs s.t. As = b, s >= 0. Columns: free variables
	// followed by one slack per row. Rows: every problem constraint plus an
	// upper bound x <= 1 per free variable. Rows with negative RHS are
	// negated so the equality system stays well-posed after adding slacks.
	nRows := len(p.Constraints) + nFree
	nCols := nFree + nRows
	A := mat.NewDense(nRows, nCols, nil)
	b := make([]float64, nRows)
	c := make([]float64, nCols)
	for j, v := range freeIdx {
		c[j] = -p.Objective[v]
	}

	row := 0
	for _, cons := range p.Constraints {
		rhs := cons.Bound
		for _, t := range cons.Terms {
			switch fixed[t.Var] {
			case 1:
				rhs -= t.Coef
			case -1:
				A.Set(row, pos[t.Var], t.Coef)
			}
		}
		A.Set(row, nFree+row, 1)
		b[row] = rhs
		if rhs < 0 {
			negateRow(A, row, nCols)
			b[row] = -rhs
		}
		row++
	}
	for j := range freeIdx {
		A.Set(row, j, 1)
		A.Set(row, nFree+row, 1)
		b[row] = 1
		row++
	}

	_, sol, err := lp.Simplex(c, A, b, simplexTol, nil)
	if err != nil {
		return nil, 0, err
	}

	vals := pinnedValues(p.NumVars, fixed)
	obj := fixedObj
	for j, v := range freeIdx {
		x := sol[j]
		if x < 0 {
			x = 0
		}
		if x > 1 {
			x = 1
		}
		vals[v] = x
		obj += p.Objective[v] * x
	}
	return vals, obj, nil
}

func pinnedValues(n int, fixed []int8) []float64 {
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		if fixed[i] == 1 {
			vals[i] = 1
		}
	}
	return vals
}

func negateRow(A *mat.Dense, row, cols int) {
	for j := 0; j < cols; j++ {
		A.Set(row, j, -A.At(row, j))
	}
}
