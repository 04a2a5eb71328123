package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ogurtsovandrei/randztree/counters"
)

func TestSeedIsDeterministic(t *testing.T) {
	a := Seed("zipzip-gu/n=100000/trial=3")
	b := Seed("zipzip-gu/n=100000/trial=3")
	require.Equal(t, a, b)
}

func TestSeedDiffersAcrossLabels(t *testing.T) {
	require.NotEqual(t, Seed("trial=1"), Seed("trial=2"))
}

func TestSummaryStringFormatsCounts(t *testing.T) {
	s := Summary{
		Label:           "geometric/n=1000000",
		Size:            1000000,
		Height:          42,
		AverageDepth:    12.3456,
		HasAverageDepth: true,
		Counters:        counters.Counters{TotalComparisons: 2500000, FirstTies: 1200, BothTies: 3},
	}
	out := s.String()
	require.Contains(t, out, "1,000,000")
	require.Contains(t, out, "12.35")
	require.Contains(t, out, "2,500,000")
}

func TestSummaryStringHandlesEmptyTree(t *testing.T) {
	s := Summary{Label: "empty", Height: -1, HasAverageDepth: false}
	require.Contains(t, s.String(), "avgDepth=n/a")
}

func TestSummaryStringOmitsDynamicBitsWhenAbsent(t *testing.T) {
	s := Summary{Label: "geometric", Height: 3, HasAverageDepth: true, AverageDepth: 1.5}
	require.NotContains(t, s.String(), "maxGBits")
}

func TestSummaryStringIncludesDynamicBitsWhenPresent(t *testing.T) {
	s := Summary{
		Label:              "dynamic",
		Height:             5,
		HasDynamicBits:     true,
		MaxGeometricBits:   12,
		TotalGeometricBits: 3400,
		MaxUniformBits:     7,
		TotalUniformBits:   900,
	}
	out := s.String()
	require.Contains(t, out, "maxGBits=12")
	require.Contains(t, out, "totalGBits=3,400")
	require.Contains(t, out, "maxUBits=7")
	require.Contains(t, out, "totalUBits=900")
}

func TestRecorderWriteAndClear(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	r := NewRecorder(path)

	require.NoError(t, r.WriteRow("geometric", "1000", "9.5"))
	require.NoError(t, r.WriteRow("uniform", "1000", "11.2"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "geometric,1000,9.5")
	require.Contains(t, string(data), "uniform,1000,11.2")

	require.NoError(t, r.Clear())
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestRecorderClearOnMissingFileIsNotAnError(t *testing.T) {
	r := NewRecorder(filepath.Join(t.TempDir(), "never-written.csv"))
	require.NoError(t, r.Clear())
}
