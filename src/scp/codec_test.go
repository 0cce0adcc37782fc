package scp_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"scp_harness/src/scp"
)

var sortInts = cmpopts.SortSlices(func(a, b int) bool { return a < b })

func TestReadInstance_Rows(t *testing.T) {
	input := `3 2
4 7
1
1
2 1 2
1 2
`
	inst, err := scp.ReadInstance(strings.NewReader(input), scp.FormatRows)
	require.NoError(t, err)
	require.Equal(t, 3, inst.NumElements)
	require.Equal(t, 2, inst.NumSubsets)
	require.Equal(t, []int{4, 7}, inst.Costs)
	require.Equal(t, [][]int{{0}, {0, 1}, {1}}, inst.Rows)
	require.Equal(t, [][]int{{0, 1}, {1, 2}}, inst.Columns)
}

func TestReadInstance_Columns(t *testing.T) {
	// line breaks carry no meaning
	input := "3 2 4 2 1 2\n7\t2\n2 3"
	inst, err := scp.ReadInstance(strings.NewReader(input), scp.FormatColumns)
	require.NoError(t, err)
	require.Equal(t, []int{4, 7}, inst.Costs)
	require.Equal(t, [][]int{{0}, {0, 1}, {1}}, inst.Rows)
	require.Equal(t, [][]int{{0, 1}, {1, 2}}, inst.Columns)
}

func TestInstance_RoundTrip(t *testing.T) {
	for _, format := range []scp.Format{scp.FormatRows, scp.FormatColumns} {
		for seed := int64(1); seed <= 5; seed++ {
			inst, err := scp.Generate(12, 9, 100, 0.3, seed)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, scp.WriteInstance(&buf, inst, format))
			got, err := scp.ReadInstance(&buf, format)
			require.NoError(t, err)

			if diff := cmp.Diff(inst, got, sortInts); diff != "" {
				t.Fatalf("%s round trip mismatch (-want +got):\n%s", format, diff)
			}
			require.True(t, inst.Equal(got))
		}
	}
}

func TestInstance_CrossFormat(t *testing.T) {
	inst, err := scp.Generate(10, 6, 50, 0.25, 42)
	require.NoError(t, err)

	var rows, columns bytes.Buffer
	require.NoError(t, scp.WriteInstance(&rows, inst, scp.FormatRows))
	require.NoError(t, scp.WriteInstance(&columns, inst, scp.FormatColumns))

	fromRows, err := scp.ReadInstance(&rows, scp.FormatRows)
	require.NoError(t, err)
	fromColumns, err := scp.ReadInstance(&columns, scp.FormatColumns)
	require.NoError(t, err)
	require.True(t, fromRows.Equal(fromColumns))
}

func TestReadInstance_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		format   scp.Format
		input    string
		location int
		detail   string
	}{
		{"empty", scp.FormatRows, "", 0, "end of input"},
		{"non numeric", scp.FormatColumns, "2 1\n5 x", 3, "not an integer"},
		{"truncated columns", scp.FormatColumns, "2 1\n5 2 1", 5, "end of input"},
		{"truncated rows", scp.FormatRows, "2 2\n1 1\n1 1\n", 6, "end of input"},
		{"set index out of range", scp.FormatRows, "1 2\n1 1\n1 3", 5, "outside"},
		{"element index zero", scp.FormatColumns, "2 1\n5 1 0", 4, "outside"},
		{"zero cost", scp.FormatColumns, "1 1\n0 1 1", 2, "cost"},
		{"cost too large", scp.FormatRows, "1 1\n2147483648\n1 1", 2, "cost"},
		{"negative count", scp.FormatColumns, "1 1\n3 -1", 3, "outside"},
		{"duplicate element", scp.FormatColumns, "2 1\n3 2 1 1", 5, "repeated"},
		{"duplicate set", scp.FormatRows, "1 2\n1 1\n2 2 2", 6, "repeated"},
		{"trailing token", scp.FormatColumns, "1 1\n3 1 1 9", 5, "trailing"},
		{"header only rows", scp.FormatRows, "2000000000 2000000000", 2, "end of input"},
		{"header only columns", scp.FormatColumns, "2000000000 2000000000\n5 0", 4, "end of input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scp.ReadInstance(strings.NewReader(tt.input), tt.format)
			require.ErrorIs(t, err, scp.ErrMalformedInput)

			var malformed *scp.MalformedInputError
			require.True(t, errors.As(err, &malformed))
			require.Equal(t, tt.location, malformed.Location)
			require.Contains(t, malformed.Detail, tt.detail)
		})
	}
}

func TestFormat_Unsupported(t *testing.T) {
	_, err := scp.ParseFormat("cols")
	require.ErrorIs(t, err, scp.ErrUnsupportedFormat)

	_, err = scp.ReadInstance(strings.NewReader("1 1 1 1 1"), scp.Format("matrix"))
	require.ErrorIs(t, err, scp.ErrUnsupportedFormat)

	inst := mustInstance(t, 1, []int{1}, [][]int{{0}})
	require.ErrorIs(t, scp.WriteInstance(&bytes.Buffer{}, inst, "csv"), scp.ErrUnsupportedFormat)
}

func TestInstance_Files(t *testing.T) {
	dir := t.TempDir()
	inst, err := scp.Generate(5, 4, 10, 0.5, 9)
	require.NoError(t, err)

	path := filepath.Join(dir, "inst.txt")
	require.NoError(t, scp.SaveInstance(path, inst, scp.FormatColumns))
	got, err := scp.LoadInstance(path, scp.FormatColumns)
	require.NoError(t, err)
	require.True(t, inst.Equal(got))

	require.NoError(t, os.WriteFile(path, []byte("1 1\n1 1 x"), 0o644))
	_, err = scp.LoadInstance(path, scp.FormatColumns)
	require.ErrorIs(t, err, scp.ErrMalformedInput)
	require.Contains(t, err.Error(), path)

	_, err = scp.LoadInstance(filepath.Join(dir, "missing.txt"), scp.FormatRows)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewInstance_Invalid(t *testing.T) {
	_, err := scp.NewInstance(2, []int{1}, [][]int{{2}})
	require.ErrorIs(t, err, scp.ErrPreconditionViolated)
	_, err = scp.NewInstance(2, []int{0}, [][]int{{1}})
	require.ErrorIs(t, err, scp.ErrPreconditionViolated)
	_, err = scp.NewInstance(2, []int{1}, [][]int{{1, 1}})
	require.ErrorIs(t, err, scp.ErrPreconditionViolated)
	_, err = scp.NewInstance(2, []int{1, 2}, [][]int{{1}})
	require.ErrorIs(t, err, scp.ErrPreconditionViolated)
}
