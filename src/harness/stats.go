package harness

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"scp_harness/src/scp"
)

type Statistic string

const (
	Runtime     Statistic = "runtime"
	TotalCost   Statistic = "total_cost"
	ApproxRatio Statistic = "approx_ratio"
)

var Statistics = []Statistic{Runtime, TotalCost, ApproxRatio}

// Table holds the mean of one statistic for one size: a row per density and a
// column per algorithm. Cells without samples hold NotApplicable.
type Table struct {
	Size       Size
	Statistic  Statistic
	Densities  []float64
	Algorithms []scp.Algorithm
	Cells      [][]float64
}

func sample(res Result, statistic Statistic) (float64, bool) {
	switch statistic {
	case Runtime:
		return res.Solution.Runtime.Seconds(), true
	case TotalCost:
		return float64(res.Solution.TotalCost), true
	case ApproxRatio:
		return res.Ratio, res.Ratio != NotApplicable
	}
	return 0, false
}

// Aggregate averages the trials of every (size, density, algorithm) cell.
func Aggregate(cfg *Config, trials []*Trial) []Table {
	var tables []Table
	for _, s := range cfg.Sizes {
		for _, statistic := range Statistics {
			table := Table{
				Size:       s,
				Statistic:  statistic,
				Densities:  cfg.Densities,
				Algorithms: cfg.Algorithms,
				Cells:      make([][]float64, len(cfg.Densities)),
			}
			for i, density := range cfg.Densities {
				table.Cells[i] = make([]float64, len(cfg.Algorithms))
				for j, alg := range cfg.Algorithms {
					var values []float64
					for _, trial := range trials {
						if trial.Size != s || trial.Density != density {
							continue
						}
						for _, res := range trial.Results {
							if res.Algorithm != alg {
								continue
							}
							if v, ok := sample(res, statistic); ok {
								values = append(values, v)
							}
						}
					}
					table.Cells[i][j] = NotApplicable
					if len(values) > 0 {
						table.Cells[i][j] = stat.Mean(values, nil)
					}
				}
			}
			tables = append(tables, table)
		}
	}
	return tables
}

func WriteTable(w io.Writer, table Table, sys SysInfo) error {
	fmt.Fprintf(w, "# %s\n", sys)
	fmt.Fprintf(w, "# size %s, mean %s\n", table.Size, table.Statistic)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "density")
	for _, alg := range table.Algorithms {
		fmt.Fprintf(tw, "\t%s", alg)
	}
	fmt.Fprintln(tw)
	for i, density := range table.Densities {
		fmt.Fprint(tw, strconv.FormatFloat(density, 'g', -1, 64))
		for _, v := range table.Cells[i] {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(v, 'g', 6, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
