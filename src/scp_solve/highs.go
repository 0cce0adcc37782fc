//go:build highs

package main

import "scp_harness/src/mip"

func init() {
	solveHighs = mip.Solve
}
