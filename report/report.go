// Package report renders simulation results for the console: a fixed-width
// comparison table, speedup lines against the no-index baseline and the CSV
// block emitted by the wall-clock benchmark mode.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/blueflylabor/fakeTape/sim"
)

// BenchmarkRow is one strategy's wall-clock measurements in milliseconds.
type BenchmarkRow struct {
	Strategy    string
	BuildMillis float64
	QueryMillis float64
}

// WriteTable renders results as a fixed-width table, one row per strategy.
func WriteTable(w io.Writer, results []sim.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%-30s%-20s%-20s%-15s%-20s\n",
		"Strategy", "Index Build Time (s)", "Avg Access Time (s)", "Total Seeks", "Total Access Time (s)")
	fmt.Fprintln(bw, strings.Repeat("-", 110))

	for _, res := range results {
		fmt.Fprintf(bw, "%-30s%-20.6f%-20.6f%-15d%-20.6f\n",
			res.Strategy, res.IndexBuildTime, res.AverageAccessTime, res.TotalSeeks, res.TotalAccessTime)
	}

	return bw.Flush()
}

// WriteComparison renders each indexed strategy's speedup over the first
// result, which is expected to be the no-index baseline. Fewer than two
// results produce no output.
func WriteComparison(w io.Writer, results []sim.Result) error {
	if len(results) < 2 {
		return nil
	}

	bw := bufio.NewWriter(w)
	baseline := results[0]

	for _, res := range results[1:] {
		speedup := baseline.AverageAccessTime / res.AverageAccessTime
		fmt.Fprintf(bw, "%s is %.2fx faster than no index strategy\n", res.Strategy, speedup)
	}

	return bw.Flush()
}

// WriteBenchmarkCSV renders the wall-clock benchmark block: a title line, a
// CSV header and one line per strategy.
func WriteBenchmarkCSV(w io.Writer, rows []BenchmarkRow) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Benchmark Results (ms):")
	fmt.Fprintln(bw, "Strategy,IndexBuildTime,QueryTime")
	for _, row := range rows {
		fmt.Fprintf(bw, "%s,%.3f,%.3f\n", row.Strategy, row.BuildMillis, row.QueryMillis)
	}

	return bw.Flush()
}
