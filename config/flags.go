package config

import (
	"strconv"

	"github.com/sarchlab/ippcode/stats"
	"github.com/spf13/pflag"
)

// switchValue is a flag without a value whose every occurrence is forwarded
// to the builder, keeping the relative order of all flags.
type switchValue struct {
	set   bool
	apply func() error
}

func (v *switchValue) String() string { return strconv.FormatBool(v.set) }
func (v *switchValue) Type() string   { return "bool" }

func (v *switchValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if !on {
		return nil
	}

	v.set = true
	return v.apply()
}

// stringValue forwards every occurrence of a valued flag to the builder.
type stringValue struct {
	last  string
	apply func(string) error
}

func (v *stringValue) String() string { return v.last }
func (v *stringValue) Type() string   { return "string" }

func (v *stringValue) Set(s string) error {
	v.last = s
	return v.apply(s)
}

func addSwitch(fs *pflag.FlagSet, name, usage string, apply func() error) {
	fs.Var(&switchValue{apply: apply}, name, usage)
	fs.Lookup(name).NoOptDefVal = "true"
}

var metricUsage = map[stats.Metric]string{
	stats.MetricLoc:       "number of instructions",
	stats.MetricComments:  "number of lines with a comment",
	stats.MetricLabels:    "number of distinct labels",
	stats.MetricJumps:     "number of jumps, calls, and returns",
	stats.MetricFwJumps:   "number of jumps to a label defined later",
	stats.MetricBackJumps: "number of jumps to a label defined earlier",
	stats.MetricBadJumps:  "number of jumps to an undefined label",
}

// BindFlags registers every command-line option on fs. Values are fed into
// b as pflag parses them.
func BindFlags(fs *pflag.FlagSet, b *Builder) {
	fs.Var(&stringValue{apply: b.AddTarget}, "stats",
		"write the statistics that follow to `file`")

	for _, m := range stats.Metrics() {
		m := m
		addSwitch(fs, m.String(), metricUsage[m], func() error {
			return b.AddMetric(m)
		})
	}

	fs.Var(&stringValue{apply: b.AddText}, "print",
		"write `string` to the current stats file")
	addSwitch(fs, "eol", "write an empty line to the current stats file",
		b.AddEOL)

	fs.Var(&stringValue{last: "xml", apply: b.WithFormat}, "format",
		"document `format`: xml or yaml")
	addSwitch(fs, "summary", "print a statistics table to stderr", func() error {
		b.WithSummary()
		return nil
	})
	addSwitch(fs, "list", "print the translated program as a table to stderr", func() error {
		b.WithList()
		return nil
	})
	addSwitch(fs, "trace", "log translation events to stderr", func() error {
		b.WithTrace()
		return nil
	})
}
