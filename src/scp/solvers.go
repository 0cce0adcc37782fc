package scp

import (
	"slices"
	"time"

	"github.com/yourbasic/bit"
)

// Algorithm tags accepted by Solve.
type Algorithm string

const (
	NaiveGreedy     Algorithm = "NG"
	OptimizedGreedy Algorithm = "OG"
	SubfamilyExact  Algorithm = "2ME"
	UniverseExact   Algorithm = "2NE"
)

// Algorithms lists every supported tag in the order the harness runs them.
var Algorithms = []Algorithm{NaiveGreedy, OptimizedGreedy, SubfamilyExact, UniverseExact}

func ParseAlgorithm(tag string) (Algorithm, error) {
	a := Algorithm(tag)
	if !slices.Contains(Algorithms, a) {
		return "", &UnsupportedAlgorithmError{Tag: tag}
	}
	return a, nil
}

// CheckPreconditions reports whether alg may run on inst; the exact engines
// need their enumerated dimension to fit a 64-bit mask with head-room.
func CheckPreconditions(inst *Instance, alg Algorithm) error {
	switch alg {
	case SubfamilyExact:
		if inst.NumSubsets > MaxExactSets {
			return &PreconditionViolatedError{Algorithm: string(alg), Parameter: "m", Value: float64(inst.NumSubsets), Limit: MaxExactSets}
		}
	case UniverseExact:
		if inst.NumElements > MaxExactElements {
			return &PreconditionViolatedError{Algorithm: string(alg), Parameter: "n", Value: float64(inst.NumElements), Limit: MaxExactElements}
		}
	}
	return nil
}

// CheckFeasibility fails with InfeasibleInstanceError on the first element no set contains.
func (inst *Instance) CheckFeasibility() error {
	exists := new(bit.Set)
	for _, column := range inst.Columns {
		for _, r := range column {
			exists.Add(r)
		}
	}
	if exists.Size() == inst.NumElements {
		return nil
	}
	for r := range inst.NumElements {
		if !exists.Contains(r) {
			return &InfeasibleInstanceError{Element: r + 1}
		}
	}
	return nil
}

// Solve runs alg on inst. The runtime covers the algorithm only: it starts
// after the feasibility check and stops before the selection is renumbered.
func Solve(inst *Instance, tag Algorithm) (*Solution, error) {
	alg, err := ParseAlgorithm(string(tag))
	if err != nil {
		return nil, err
	}
	if err := CheckPreconditions(inst, alg); err != nil {
		return nil, err
	}
	if err := inst.CheckFeasibility(); err != nil {
		return nil, err
	}

	var selected []int
	var total int64
	start := time.Now()
	switch alg {
	case NaiveGreedy:
		selected, total = inst.naiveGreedy()
	case OptimizedGreedy:
		selected, total = inst.optimizedGreedy()
	case SubfamilyExact:
		selected, total = inst.subfamilyExact()
	case UniverseExact:
		selected, total = inst.universeExact()
	}
	elapsed := time.Since(start)

	for i := range selected {
		selected[i]++
	}
	slices.Sort(selected)
	return &Solution{
		Selected:  selected,
		TotalCost: total,
		Runtime:   elapsed,
	}, nil
}
