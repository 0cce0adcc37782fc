package scp

import (
	"math"
)

func unitCost(cost, remaining int) float64 {
	if remaining == 0 {
		return math.Inf(1)
	}
	return float64(cost) / float64(remaining)
}

// argminFrom scans all unit costs in ascending order and moves bestC only on a
// strict improvement, so ties go to the smallest index.
func argminFrom(bestC int, unitCosts []float64) int {
	for c := range unitCosts {
		if unitCosts[c] < unitCosts[bestC] {
			bestC = c
		}
	}
	return bestC
}

// naiveGreedy recomputes every set's uncovered count from scratch each round.
// O(n·Σ|columns[c]|) time.
func (inst *Instance) naiveGreedy() (selected []int, total int64) {
	remaining := make([]int, inst.NumSubsets)
	unitCosts := make([]float64, inst.NumSubsets)
	inUnion := make([]bool, inst.NumElements)
	unionSize := 0
	bestC := 0

	for unionSize < inst.NumElements {
		for c, column := range inst.Columns {
			remaining[c] = 0
			for _, r := range column {
				if !inUnion[r] {
					remaining[c]++
				}
			}
			unitCosts[c] = unitCost(inst.Costs[c], remaining[c])
		}
		bestC = argminFrom(bestC, unitCosts)

		selected = append(selected, bestC)
		total += int64(inst.Costs[bestC])
		for _, r := range inst.Columns[bestC] {
			if !inUnion[r] {
				inUnion[r] = true
				unionSize++
			}
		}
	}
	return
}

// optimizedGreedy only touches the sets that contain a newly covered element,
// so every (element, set) incidence is updated exactly once over the run.
func (inst *Instance) optimizedGreedy() (selected []int, total int64) {
	remaining := make([]int, inst.NumSubsets)
	unitCosts := make([]float64, inst.NumSubsets)
	inUnion := make([]bool, inst.NumElements)
	unionSize := 0
	bestC := 0

	for c, column := range inst.Columns {
		remaining[c] = len(column)
		unitCosts[c] = unitCost(inst.Costs[c], remaining[c])
		if unitCosts[c] < unitCosts[bestC] {
			bestC = c
		}
	}

	for unionSize < inst.NumElements {
		bestC = argminFrom(bestC, unitCosts)

		selected = append(selected, bestC)
		total += int64(inst.Costs[bestC])
		for _, r := range inst.Columns[bestC] {
			if inUnion[r] {
				continue
			}
			for _, c := range inst.Rows[r] {
				remaining[c]--
				unitCosts[c] = unitCost(inst.Costs[c], remaining[c])
			}
			inUnion[r] = true
			unionSize++
		}
	}
	return
}
