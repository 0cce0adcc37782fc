package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"scp_harness/src/scp"
)

func TestGeneratorCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-n", "7", "-m", "5", "--density", "0.3", "--seed", "11", "--format", "rows", "--out", "-"})
	require.NoError(t, cmd.Execute())

	inst, err := scp.Generate(7, 5, 100, 0.3, 11)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, scp.WriteInstance(&want, inst, scp.FormatRows))
	require.Equal(t, want.String(), out.String())
}

func TestGeneratorCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inst.txt")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--elems", "4", "--sets", "3", "--out", path})
	require.NoError(t, cmd.Execute())

	inst, err := scp.LoadInstance(path, scp.FormatColumns)
	require.NoError(t, err)
	require.Equal(t, 4, inst.NumElements)
	require.Equal(t, 3, inst.NumSubsets)
}

func TestGeneratorCmd_Invalid(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-n", "4", "-m", "3", "--density", "2", "--out", "-"})
	require.ErrorIs(t, cmd.Execute(), scp.ErrPreconditionViolated)
}
