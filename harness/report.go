package harness

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/ogurtsovandrei/randztree/counters"
)

// Summary is a human-readable snapshot of one tree run, meant for
// end-of-experiment reporting rather than for the hot path.
type Summary struct {
	Label           string
	Size            int
	Height          int
	AverageDepth    float64
	HasAverageDepth bool
	Counters        counters.Counters

	// HasDynamicBits gates the four fields below, which only apply to runs
	// built on the dynamic lazy-bit rank scheme (spec.md §6's "Dynamic
	// variant extras"); see rank.Dynamic.Metrics.
	HasDynamicBits     bool
	MaxGeometricBits   uint64
	TotalGeometricBits uint64
	MaxUniformBits     uint64
	TotalUniformBits   uint64
}

// String renders the summary the way an experiment log line should read:
// large counts comma-grouped, the average depth fixed to two decimals.
func (s Summary) String() string {
	avg := "n/a"
	if s.HasAverageDepth {
		avg = fmt.Sprintf("%.2f", s.AverageDepth)
	}

	line := fmt.Sprintf(
		"%s: size=%s height=%d avgDepth=%s comparisons=%s firstTies=%s bothTies=%s",
		s.Label,
		humanize.Comma(int64(s.Size)),
		s.Height,
		avg,
		humanize.Comma(int64(s.Counters.TotalComparisons)),
		humanize.Comma(int64(s.Counters.FirstTies)),
		humanize.Comma(int64(s.Counters.BothTies)),
	)
	if !s.HasDynamicBits {
		return line
	}
	return line + fmt.Sprintf(
		" maxGBits=%s totalGBits=%s maxUBits=%s totalUBits=%s",
		humanize.Comma(int64(s.MaxGeometricBits)),
		humanize.Comma(int64(s.TotalGeometricBits)),
		humanize.Comma(int64(s.MaxUniformBits)),
		humanize.Comma(int64(s.TotalUniformBits)),
	)
}

// Recorder appends CSV rows to a results file, the way
// Thesis/utils/stats_collector.go appends match-count lines to
// candidate_stats.log: open-append-close per call, guarded by a mutex so
// concurrent experiment goroutines don't interleave partial lines.
type Recorder struct {
	mu   sync.Mutex
	path string
}

// NewRecorder builds a Recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// WriteRow appends one CSV row (already-stringified fields) to the
// recorder's file, creating it if necessary. A write failure is reported
// to the caller rather than silently swallowed, since a silently-lost
// experiment result is a real loss.
func (r *Recorder) WriteRow(fields ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("harness: open %s: %w", r.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, strings.Join(fields, ",")); err != nil {
		return fmt.Errorf("harness: write %s: %w", r.path, err)
	}
	return nil
}

// Clear removes the recorder's underlying file, if present.
func (r *Recorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("harness: clear %s: %w", r.path, err)
	}
	return nil
}
