package scp_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scp_harness/src/scp"
)

func TestWriteSolution(t *testing.T) {
	sol := &scp.Solution{
		Selected:  []int{1, 4, 9},
		TotalCost: 23,
		Runtime:   1500 * time.Millisecond,
	}
	var buf bytes.Buffer
	require.NoError(t, scp.WriteSolution(&buf, sol))
	require.Equal(t, `Number of sets: 3
Total cost: 23
Sets selected:
1 4 9
Runtime (s): 1.5
`, buf.String())
}

func TestSolution_RoundTrip(t *testing.T) {
	inst, err := scp.Generate(8, 6, 30, 0.3, 4)
	require.NoError(t, err)

	for _, alg := range scp.Algorithms {
		sol, err := scp.Solve(inst, alg)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), string(alg)+".txt")
		require.NoError(t, scp.SaveSolution(path, sol))

		var buf bytes.Buffer
		require.NoError(t, scp.WriteSolution(&buf, sol))
		got, err := scp.ReadSolution(&buf)
		require.NoError(t, err)
		require.Equal(t, sol.Selected, got.Selected)
		require.Equal(t, sol.TotalCost, got.TotalCost)
		require.InDelta(t, sol.Runtime.Seconds(), got.Runtime.Seconds(), 1e-6)
	}
}

func TestReadSolution_Empty(t *testing.T) {
	got, err := scp.ReadSolution(strings.NewReader("Number of sets: 0\nTotal cost: 0\nSets selected:\n\nRuntime (s): 0\n"))
	require.NoError(t, err)
	require.Empty(t, got.Selected)
	require.Zero(t, got.TotalCost)
}

func TestReadSolution_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"wrong header", "Sets: 1\n", 1},
		{"count mismatch", "Number of sets: 2\nTotal cost: 4\nSets selected:\n1\nRuntime (s): 0.1\n", 4},
		{"bad cost", "Number of sets: 1\nTotal cost: four\n", 2},
		{"missing runtime", "Number of sets: 1\nTotal cost: 4\nSets selected:\n1\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scp.ReadSolution(strings.NewReader(tt.input))
			require.ErrorIs(t, err, scp.ErrMalformedInput)
			var malformed *scp.MalformedInputError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tt.line, malformed.Location)
		})
	}
}
