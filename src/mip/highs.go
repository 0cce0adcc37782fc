// Package mip solves set cover instances as 0-1 programs with HiGHS. It is a
// reference for cross-checking the exact engines on instances they cannot enumerate.
package mip

import (
	"fmt"
	"math"
	"time"

	"github.com/lanl/highs"
	"gonum.org/v1/gonum/mat"

	"scp_harness/src/scp"
)

// incidence returns the n×m 0/1 matrix with a one where set c contains element r.
func incidence(inst *scp.Instance) *mat.Dense {
	a := mat.NewDense(max(inst.NumElements, 1), max(inst.NumSubsets, 1), nil)
	for c, column := range inst.Columns {
		for _, r := range column {
			a.Set(r, c, 1)
		}
	}
	return a
}

// Model builds min Σ w_c x_c subject to Σ_{c ∋ r} x_c ≥ 1 for every element r.
func Model(inst *scp.Instance) *highs.Model {
	m := inst.NumSubsets
	lp := new(highs.Model)
	lp.VarTypes = make([]highs.VariableType, m)
	lp.ColLower = make([]float64, m)
	lp.ColUpper = make([]float64, m)
	lp.ColCosts = make([]float64, m)
	for c := range m {
		lp.VarTypes[c] = highs.IntegerType
		lp.ColUpper[c] = 1
		lp.ColCosts[c] = float64(inst.Costs[c])
	}

	a := incidence(inst)
	for r := range inst.NumElements {
		lp.AddDenseRow(1, a.RawRowView(r)[:m], float64(m))
	}
	return lp
}

// Solve returns an optimal cover found by HiGHS.
func Solve(inst *scp.Instance) (*scp.Solution, error) {
	if err := inst.CheckFeasibility(); err != nil {
		return nil, err
	}
	if inst.NumElements == 0 {
		return &scp.Solution{}, nil
	}

	start := time.Now()
	solution, err := Model(inst).Solve()
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	if solution.Status != highs.Optimal {
		return nil, fmt.Errorf("status: %v", solution.Status.String())
	}

	sol := &scp.Solution{Runtime: elapsed}
	for c, v := range solution.ColumnPrimal[:inst.NumSubsets] {
		if v > 0.5 {
			sol.Selected = append(sol.Selected, c+1)
		}
	}
	sol.TotalCost = int64(math.Round(solution.Objective))
	return sol, nil
}
