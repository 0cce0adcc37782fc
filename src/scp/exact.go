package scp

import (
	"math"
	"math/bits"

	"github.com/yourbasic/bit"
)

const unreachable = math.MaxInt64

// subfamilyExact tries all 2^m sub-families in increasing mask order and keeps
// the first one of minimum cost that covers the universe.
// O(2^m·(m+Σ|columns[c]|)) time.
func (inst *Instance) subfamilyExact() (selected []int, total int64) {
	m := inst.NumSubsets
	columns := make([]*bit.Set, m)
	for c, column := range inst.Columns {
		columns[c] = new(bit.Set)
		for _, r := range column {
			columns[c].Add(r)
		}
	}

	var best uint64
	total = unreachable
	for x := uint64(0); x < uint64(1)<<m; x++ {
		covered := new(bit.Set)
		var next int64
		for c := range m {
			if x>>c&1 == 1 {
				covered.SetOr(covered, columns[c])
				next += int64(inst.Costs[c])
			}
		}
		if covered.Size() == inst.NumElements && next < total {
			total = next
			best = x
		}
	}

	for c := range m {
		if best>>c&1 == 1 {
			selected = append(selected, c)
		}
	}
	return
}

// universeExact runs the bitmask DP over subsets of the universe: the cheapest
// cover of x picks some set c last and extends the cheapest cover of x \ c.
// Witnesses are stored as m-bit masks, words per cell.
// O(2^n·(m+max|columns[c]|)) time.
func (inst *Instance) universeExact() (selected []int, total int64) {
	n, m := inst.NumElements, inst.NumSubsets
	size := uint64(1) << n
	words := (m + 63) / 64

	masks := make([]uint64, m)
	for c, column := range inst.Columns {
		for _, r := range column {
			masks[c] |= uint64(1) << r
		}
	}

	dpCost := make([]int64, size)
	for x := range dpCost {
		dpCost[x] = unreachable
	}
	dpCost[0] = 0
	dpWitness := make([]uint64, size*uint64(words))

	for x := uint64(0); x < size; x++ {
		for c := range m {
			rest := x &^ masks[c]
			if dpCost[rest] == unreachable {
				continue
			}
			next := dpCost[rest] + int64(inst.Costs[c])
			if next < dpCost[x] {
				dpCost[x] = next
				cell := dpWitness[x*uint64(words) : (x+1)*uint64(words)]
				copy(cell, dpWitness[rest*uint64(words):(rest+1)*uint64(words)])
				cell[c/64] |= uint64(1) << (c % 64)
			}
		}
	}

	full := size - 1
	total = dpCost[full]
	for w, word := range dpWitness[full*uint64(words) : (full+1)*uint64(words)] {
		for word != 0 {
			selected = append(selected, w*64+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return
}
