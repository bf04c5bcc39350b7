package bench

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/exp/constraints"
)

// Result is the median of one contender/workload/size measurement.
type Result struct {
	RunID     string
	Contender string
	Workload  string
	Size      int
	Rounds    int
	Ops       int           // Push+Pop calls per round
	Elapsed   time.Duration // median across rounds
}

// NsPerOp returns the median cost of a single Push or Pop.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// MOpsPerSec extrapolates NsPerOp to millions of operations per second.
func (r Result) MOpsPerSec() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return 1000 / ns
}

// median returns the middle value of xs, averaging the two middle values
// for even lengths. xs is not modified.
func median[T constraints.Integer | constraints.Float](xs []T) T {
	if len(xs) == 0 {
		var zero T
		return zero
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return s[mid-1] + (s[mid]-s[mid-1])/2
}

// WriteTable writes results as an aligned table, grouped in the order given.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tSIZE\tCONTENDER\tROUNDS\tNS/OP\tM OPS/SEC\tVS CYCLIC")

	// Baseline per workload+size is the "cyclic" contender when present.
	type key struct {
		workload string
		size     int
	}
	baseline := make(map[key]float64)
	for _, r := range results {
		if r.Contender == "cyclic" {
			baseline[key{r.Workload, r.Size}] = r.NsPerOp()
		}
	}

	for _, r := range results {
		rel := "-"
		if base, ok := baseline[key{r.Workload, r.Size}]; ok && base > 0 {
			rel = fmt.Sprintf("%.2fx", r.NsPerOp()/base)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.2f\t%.2f\t%s\n",
			r.Workload, r.Size, r.Contender, r.Rounds, r.NsPerOp(), r.MOpsPerSec(), rel)
	}
	return tw.Flush()
}
