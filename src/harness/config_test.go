package harness_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"scp_harness/src/harness"
	"scp_harness/src/scp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := harness.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, []harness.Size{{N: 20, M: 1000}, {N: 1000, M: 20}, {N: 1000, M: 1000}}, cfg.Sizes)
	require.Equal(t, scp.Algorithms, cfg.Algorithms)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
sizes:
  - {n: 10, m: 12}
densities: [0.05, 0.3]
trials: 3
format: rows
algorithms: [OG, 2NE]
exact_max_elements: 16
`)
	cfg, err := harness.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []harness.Size{{N: 10, M: 12}}, cfg.Sizes)
	require.Equal(t, []float64{0.05, 0.3}, cfg.Densities)
	require.Equal(t, 3, cfg.Trials)
	require.Equal(t, scp.FormatRows, cfg.Format)
	require.Equal(t, []scp.Algorithm{scp.OptimizedGreedy, scp.UniverseExact}, cfg.Algorithms)
	require.Equal(t, 16, cfg.ExactMaxElements)

	// untouched keys keep their defaults
	require.Equal(t, 100, cfg.MaxCost)
	require.Equal(t, 20, cfg.ExactMaxSets)
	require.True(t, cfg.WriteInput)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"unknown algorithm", "algorithms: [NG, LP]\n", scp.ErrUnsupportedAlgorithm},
		{"unknown format", "format: cols\n", scp.ErrUnsupportedFormat},
		{"density out of range", "densities: [1.2]\n", scp.ErrPreconditionViolated},
		{"exact limit too large", "exact_max_elements: 63\n", scp.ErrPreconditionViolated},
		{"empty size", "sizes: [{n: 0, m: 3}]\n", scp.ErrPreconditionViolated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := harness.LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.target)
		})
	}

	_, err := harness.LoadConfig(writeConfig(t, "trails: 3\n"))
	require.Error(t, err)
	_, err = harness.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
