package stats

import "fmt"

// Metric names one statistic that can be written to a stats file.
type Metric int

const (
	MetricLoc Metric = iota
	MetricComments
	MetricLabels
	MetricJumps
	MetricFwJumps
	MetricBackJumps
	MetricBadJumps
)

var metricNames = [...]string{
	MetricLoc:       "loc",
	MetricComments:  "comments",
	MetricLabels:    "labels",
	MetricJumps:     "jumps",
	MetricFwJumps:   "fwjumps",
	MetricBackJumps: "backjumps",
	MetricBadJumps:  "badjumps",
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// Metrics lists every metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, len(metricNames))
	for i := range metricNames {
		out[i] = Metric(i)
	}
	return out
}

// ParseMetric finds a metric by its flag name.
func ParseMetric(name string) (Metric, bool) {
	for i, n := range metricNames {
		if n == name {
			return Metric(i), true
		}
	}
	return 0, false
}

// Value returns the number the metric stands for.
func (s Stats) Value(m Metric) int {
	switch m {
	case MetricLoc:
		return s.Insts
	case MetricComments:
		return s.Comments
	case MetricLabels:
		return s.Labels
	case MetricJumps:
		return s.Jumps
	case MetricFwJumps:
		return s.FwJumps
	case MetricBackJumps:
		return s.BackJumps
	case MetricBadJumps:
		return s.BadJumps
	}
	panic(fmt.Sprintf("unknown metric %d", int(m)))
}

// EntryKind distinguishes the lines of a stats file.
type EntryKind int

const (
	EntryMetric EntryKind = iota
	EntryText
	EntryEOL
)

// Entry is one line of a stats file.
type Entry struct {
	Kind   EntryKind
	Metric Metric
	Text   string
}

// MetricEntry writes the value of m.
func MetricEntry(m Metric) Entry {
	return Entry{Kind: EntryMetric, Metric: m}
}

// TextEntry writes text verbatim.
func TextEntry(text string) Entry {
	return Entry{Kind: EntryText, Text: text}
}

// EOLEntry writes an empty line.
func EOLEntry() Entry {
	return Entry{Kind: EntryEOL}
}
