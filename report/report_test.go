package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueflylabor/fakeTape/sim"
)

func TestWriteTable(t *testing.T) {
	results := []sim.Result{
		{Strategy: "No Index", IndexBuildTime: 0, AverageAccessTime: 51.398752, TotalSeeks: 1000, TotalAccessTime: 51398.752},
		{Strategy: "Fixed Interval Index", IndexBuildTime: 112.333108, AverageAccessTime: 0.039343, TotalSeeks: 7, TotalAccessTime: 39.343},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// Columns start at offsets 0, 30, 50, 70 and 85.
	assert.True(t, strings.HasPrefix(lines[0], "Strategy"))
	assert.Equal(t, 30, strings.Index(lines[0], "Index Build Time (s)"))
	assert.Equal(t, 50, strings.Index(lines[0], "Avg Access Time (s)"))
	assert.Equal(t, 70, strings.Index(lines[0], "Total Seeks"))
	assert.Equal(t, 85, strings.Index(lines[0], "Total Access Time (s)"))

	assert.Equal(t, strings.Repeat("-", 110), lines[1])

	assert.True(t, strings.HasPrefix(lines[2], "No Index"))
	assert.Equal(t, 30, strings.Index(lines[2], "0.000000"))
	assert.Equal(t, 50, strings.Index(lines[2], "51.398752"))

	assert.True(t, strings.HasPrefix(lines[3], "Fixed Interval Index          112.333108"))
	assert.Contains(t, lines[3], "0.039343")
}

func TestWriteComparison(t *testing.T) {
	results := []sim.Result{
		{Strategy: "No Index", AverageAccessTime: 50.0},
		{Strategy: "Fixed Interval Index", AverageAccessTime: 0.5},
		{Strategy: "Hierarchical Index", AverageAccessTime: 25.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, results))

	assert.Equal(t,
		"Fixed Interval Index is 100.00x faster than no index strategy\n"+
			"Hierarchical Index is 2.00x faster than no index strategy\n",
		buf.String())
}

func TestWriteComparisonNeedsBaseline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, []sim.Result{{Strategy: "No Index"}}))
	assert.Empty(t, buf.String())

	require.NoError(t, WriteComparison(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteBenchmarkCSV(t *testing.T) {
	rows := []BenchmarkRow{
		{Strategy: "none", BuildMillis: 0.001, QueryMillis: 1532.5},
		{Strategy: "fixed", BuildMillis: 12.25, QueryMillis: 0.75},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBenchmarkCSV(&buf, rows))

	assert.Equal(t,
		"Benchmark Results (ms):\n"+
			"Strategy,IndexBuildTime,QueryTime\n"+
			"none,0.001,1532.500\n"+
			"fixed,12.250,0.750\n",
		buf.String())
}
