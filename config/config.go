// Package config provides the options one run of the translator uses.
package config

import (
	"path/filepath"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
	"github.com/sarchlab/ippcode/stats"
)

// StatsTarget is one stats file and the lines to write into it.
type StatsTarget struct {
	File    string
	Entries []stats.Entry
}

// Config is the outcome of command-line processing.
type Config struct {
	EmitHelp bool
	Targets  []StatsTarget
	Format   emit.Format
	Summary  bool
	List     bool
	Trace    bool
}

// Builder accumulates a Config in the order options are given. The first
// error it meets is kept and returned again by Build.
type Builder struct {
	cfg   Config
	files map[string]bool
	// number of options other than --help
	options  int
	helpArgs int
	err      error
}

// NewBuilder creates a builder with XML output and no stats targets.
func NewBuilder() *Builder {
	return &Builder{
		cfg:   Config{Format: emit.FormatXML},
		files: make(map[string]bool),
	}
}

func (b *Builder) fail(err *core.Error) error {
	if b.err == nil {
		b.err = err
	}
	return err
}

// AddTarget opens a new stats target. Later metrics go into it.
func (b *Builder) AddTarget(file string) error {
	b.options++

	if file == "" {
		return b.fail(core.Errorf(core.ExitParam, 0, "--stats needs a file name"))
	}

	key := filepath.Clean(file)
	if b.files[key] {
		return b.fail(core.Errorf(core.ExitOutputFile, 0,
			"stats file %s requested more than once", file))
	}
	b.files[key] = true

	b.cfg.Targets = append(b.cfg.Targets, StatsTarget{File: file})

	return nil
}

func (b *Builder) addEntry(flag string, e stats.Entry) error {
	b.options++

	if len(b.cfg.Targets) == 0 {
		return b.fail(core.Errorf(core.ExitParam, 0,
			"--%s given before any --stats", flag))
	}

	last := &b.cfg.Targets[len(b.cfg.Targets)-1]
	last.Entries = append(last.Entries, e)

	return nil
}

// AddMetric appends a metric to the current stats target.
func (b *Builder) AddMetric(m stats.Metric) error {
	return b.addEntry(m.String(), stats.MetricEntry(m))
}

// AddText appends a literal line to the current stats target.
func (b *Builder) AddText(text string) error {
	return b.addEntry("print", stats.TextEntry(text))
}

// AddEOL appends an empty line to the current stats target.
func (b *Builder) AddEOL() error {
	return b.addEntry("eol", stats.EOLEntry())
}

// WithFormat sets the document format.
func (b *Builder) WithFormat(name string) error {
	b.options++

	f, err := emit.ParseFormat(name)
	if err != nil {
		return b.fail(core.Errorf(core.ExitParam, 0, "%v", err))
	}
	b.cfg.Format = f

	return nil
}

// WithSummary enables the stats summary table.
func (b *Builder) WithSummary() {
	b.options++
	b.cfg.Summary = true
}

// WithList enables the program listing.
func (b *Builder) WithList() {
	b.options++
	b.cfg.List = true
}

// WithTrace enables trace logging.
func (b *Builder) WithTrace() {
	b.options++
	b.cfg.Trace = true
}

// RequestHelp records a help request together with the positional
// arguments that came with it.
func (b *Builder) RequestHelp(args []string) {
	b.cfg.EmitHelp = true
	b.helpArgs += len(args)
}

// Err returns the first error met so far.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the finished configuration.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}

	if b.cfg.EmitHelp && (b.options > 0 || b.helpArgs > 0) {
		return Config{}, core.Errorf(core.ExitParam, 0,
			"--help cannot be combined with other arguments")
	}

	cfg := b.cfg
	cfg.Targets = make([]StatsTarget, len(b.cfg.Targets))
	for i, t := range b.cfg.Targets {
		cfg.Targets[i] = StatsTarget{
			File:    t.File,
			Entries: append([]stats.Entry(nil), t.Entries...),
		}
	}

	return cfg, nil
}
