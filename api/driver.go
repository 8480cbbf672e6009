// Package api defines the driver API that runs complete translations.
package api

import (
	"bytes"
	"io"
	"os"

	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
	"github.com/sarchlab/ippcode/stats"
)

// Driver provides the interface to run the translator.
type Driver interface {
	// Run translates the source read from in and writes the document to
	// out. The stats files named by the configuration are opened before any
	// input is read and written once the translation has succeeded. Nothing
	// is written to out if the translation fails.
	Run(in io.Reader, out io.Writer) (stats.Stats, error)
}

// Opener creates the destinations stats are written to.
type Opener interface {
	Open(name string) (io.WriteCloser, error)
}

// FileOpener creates or truncates files on the local file system.
type FileOpener struct{}

// Open implements Opener.
func (FileOpener) Open(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// statsTask is one stats target and its opened destination.
type statsTask struct {
	target config.StatsTarget
	dst    io.WriteCloser
	closed bool
}

func (t *statsTask) close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	return t.dst.Close()
}

type driverImpl struct {
	cfg        config.Config
	opener     Opener
	translator core.Builder
	summaryOut io.Writer

	statsTasks []*statsTask
}

// Run implements Driver.
func (d *driverImpl) Run(in io.Reader, out io.Writer) (stats.Stats, error) {
	if err := d.openStatsTasks(); err != nil {
		return stats.Stats{}, err
	}
	defer d.closeStatsTasks()

	collector := stats.NewCollector()
	b := d.translator.WithHook(collector)
	if d.cfg.Trace {
		b = b.WithHook(core.TraceHook{})
	}

	prog, err := b.Build().Translate(in)
	if err != nil {
		return stats.Stats{}, err
	}

	s := collector.Stats()

	var doc bytes.Buffer
	if err := emit.Emit(&doc, prog, d.cfg.Format); err != nil {
		return s, core.Errorf(core.ExitInternal, 0, "render document: %v", err)
	}

	if _, err := doc.WriteTo(out); err != nil {
		return s, core.Errorf(core.ExitInternal, 0, "write document: %v", err)
	}

	if err := d.doStatsTasks(s); err != nil {
		return s, err
	}

	if d.summaryOut != nil {
		if d.cfg.List {
			core.PrintProgram(d.summaryOut, prog)
		}
		if d.cfg.Summary {
			stats.SummaryTable(d.summaryOut, s)
		}
	}

	return s, nil
}

func (d *driverImpl) openStatsTasks() error {
	d.statsTasks = nil

	for _, target := range d.cfg.Targets {
		dst, err := d.opener.Open(target.File)
		if err != nil {
			d.closeStatsTasks()
			return core.Errorf(core.ExitOutputFile, 0,
				"open stats file %s: %v", target.File, err)
		}

		d.statsTasks = append(d.statsTasks, &statsTask{
			target: target,
			dst:    dst,
		})
	}

	return nil
}

func (d *driverImpl) doStatsTasks(s stats.Stats) error {
	for _, task := range d.statsTasks {
		if err := stats.WriteEntries(task.dst, s, task.target.Entries); err != nil {
			return core.Errorf(core.ExitInternal, 0,
				"write stats file %s: %v", task.target.File, err)
		}

		if err := task.close(); err != nil {
			return core.Errorf(core.ExitInternal, 0,
				"close stats file %s: %v", task.target.File, err)
		}
	}

	return nil
}

func (d *driverImpl) closeStatsTasks() {
	for _, task := range d.statsTasks {
		if err := task.close(); err != nil {
			core.Trace("Driver", "Behavior", "Close", "File", task.target.File, "Err", err)
		}
	}
}
