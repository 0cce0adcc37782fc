package scp

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxCost = 1<<31 - 1

	// Subset masks are 64 bits wide; the exact engines keep two bits of head-room.
	MaxExactSets     = 62
	MaxExactElements = 62
)

// Instance is a weighted set cover instance. Rows and Columns are two views of
// the same incidence relation: c is in Rows[r] iff r is in Columns[c].
// Instances are built by the generator or the codec and are read-only afterwards.
type Instance struct {
	NumElements int
	NumSubsets  int
	Costs       []int
	Rows        [][]int
	Columns     [][]int
}

// Solution holds a cover as sorted 1-based set indices.
type Solution struct {
	Selected  []int
	TotalCost int64
	Runtime   time.Duration
}

func newInstance(n, m int) *Instance {
	inst := &Instance{
		NumElements: n,
		NumSubsets:  m,
		Costs:       make([]int, m),
		Rows:        make([][]int, n),
		Columns:     make([][]int, m),
	}
	return inst
}

// addIncidence records that set c contains element r on both sides of the relation.
func (inst *Instance) addIncidence(r, c int) {
	inst.Rows[r] = append(inst.Rows[r], c)
	inst.Columns[c] = append(inst.Columns[c], r)
}

func (sol *Solution) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("Total cost: %d\n", sol.TotalCost))
	s.WriteString(fmt.Sprintf("Selected subsets: %v\n", sol.Selected))
	s.WriteString(fmt.Sprintf("Runtime: %v", sol.Runtime))
	return s.String()
}

func (inst *Instance) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("N. elements: %d\n", inst.NumElements))
	s.WriteString(fmt.Sprintf("N. sets: %d\n", inst.NumSubsets))

	for c, column := range inst.Columns {
		s.WriteString(fmt.Sprintf("Cost: %d, ", inst.Costs[c]))
		s.WriteString("Elements: ")
		for _, r := range column {
			s.WriteString(fmt.Sprintf("%d ", r+1))
		}
		s.WriteRune('\n')
	}
	return s.String()
}
