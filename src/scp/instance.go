package scp

import (
	"fmt"
	"slices"
)

// NewInstance builds an instance over the universe [0, n) from 0-based columns.
// Rows are derived from the columns, so both views start out consistent.
func NewInstance(n int, costs []int, columns [][]int) (*Instance, error) {
	if n < 0 {
		return nil, &PreconditionViolatedError{Algorithm: "NewInstance", Parameter: "n", Value: float64(n), Limit: 0}
	}
	if len(costs) != len(columns) {
		return nil, fmt.Errorf("%w: %d costs for %d columns", ErrPreconditionViolated, len(costs), len(columns))
	}

	inst := newInstance(n, len(costs))
	seen := make([]int, n)
	for c, column := range columns {
		if costs[c] < 1 || costs[c] > MaxCost {
			return nil, &PreconditionViolatedError{
				Algorithm: "NewInstance",
				Parameter: fmt.Sprintf("costs[%d]", c),
				Value:     float64(costs[c]),
				Limit:     MaxCost,
			}
		}
		inst.Costs[c] = costs[c]
		for _, r := range column {
			if r < 0 || r >= n {
				return nil, &PreconditionViolatedError{
					Algorithm: "NewInstance",
					Parameter: fmt.Sprintf("columns[%d]", c),
					Value:     float64(r),
					Limit:     float64(n - 1),
				}
			}
			if seen[r] == c+1 {
				return nil, fmt.Errorf("%w: element %d repeated in column %d", ErrPreconditionViolated, r, c)
			}
			seen[r] = c + 1
			inst.addIncidence(r, c)
		}
	}
	return inst, nil
}

// Cost sums the costs of the given 1-based set indices.
func (inst *Instance) Cost(selected []int) int64 {
	var total int64
	for _, c := range selected {
		total += int64(inst.Costs[c-1])
	}
	return total
}

// Covers reports whether the 1-based sub-family covers the whole universe.
func (inst *Instance) Covers(selected []int) bool {
	covered := make([]bool, inst.NumElements)
	count := 0
	for _, c := range selected {
		if c < 1 || c > inst.NumSubsets {
			return false
		}
		for _, r := range inst.Columns[c-1] {
			if !covered[r] {
				covered[r] = true
				count++
			}
		}
	}
	return count == inst.NumElements
}

// Equal compares two instances, ignoring the order within each incidence list.
func (inst *Instance) Equal(other *Instance) bool {
	if inst.NumElements != other.NumElements || inst.NumSubsets != other.NumSubsets {
		return false
	}
	if !slices.Equal(inst.Costs, other.Costs) {
		return false
	}
	return sameLists(inst.Rows, other.Rows) && sameLists(inst.Columns, other.Columns)
}

func sameLists(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := slices.Clone(a[i]), slices.Clone(b[i])
		slices.Sort(x)
		slices.Sort(y)
		if !slices.Equal(x, y) {
			return false
		}
	}
	return true
}
