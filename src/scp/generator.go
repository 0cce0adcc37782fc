package scp

import (
	"golang.org/x/exp/rand"
)

// Generate draws a random instance from a PCG stream seeded with seed.
//
// Draw order is fixed: all m costs first, uniform in [1, maxCost]; then one
// membership draw per (r, c) in row-major order, each succeeding with
// probability density; a row left empty gets one uniformly chosen set right
// after its scan.
func Generate(n, m, maxCost int, density float64, seed int64) (*Instance, error) {
	if err := checkGenerateParams(n, m, maxCost, density); err != nil {
		return nil, err
	}

	src := new(rand.PCGSource)
	src.Seed(uint64(seed))
	rng := rand.New(src)

	inst := newInstance(n, m)
	for c := range inst.Costs {
		inst.Costs[c] = int(rng.Uint64n(uint64(maxCost))) + 1
	}

	for r := range n {
		for c := range m {
			if rng.Float64() < density {
				inst.addIncidence(r, c)
			}
		}
		if len(inst.Rows[r]) == 0 {
			inst.addIncidence(r, int(rng.Uint64n(uint64(m))))
		}
	}
	return inst, nil
}

func checkGenerateParams(n, m, maxCost int, density float64) error {
	switch {
	case n < 1:
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "n", Value: float64(n), Limit: 1}
	case m < 1:
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "m", Value: float64(m), Limit: 1}
	case maxCost < 1:
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "max_cost", Value: float64(maxCost), Limit: 1}
	case maxCost > MaxCost:
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "max_cost", Value: float64(maxCost), Limit: MaxCost}
	case !(density >= 0):
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "density", Value: density, Limit: 0}
	case density > 1:
		return &PreconditionViolatedError{Algorithm: "generate", Parameter: "density", Value: density, Limit: 1}
	}
	return nil
}
