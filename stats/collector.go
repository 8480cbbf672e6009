// Package stats gathers program statistics while a translation runs.
//
// A Collector is attached to a translator as a hook. It counts comments,
// instructions, labels, and jumps in the same pass that validates the input.
// Jump targets that are not yet defined when the jump is seen are kept aside
// and classified as forward or bad once the end of input is reached and the
// whole label table is known.
package stats

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/program"
)

// Stats are the summary numbers of one translated program.
type Stats struct {
	Insts     int
	Comments  int
	Labels    int
	Jumps     int
	FwJumps   int
	BackJumps int
	BadJumps  int
}

// jumpRecord is a jump whose target was undefined when the jump was seen.
type jumpRecord struct {
	label string
	order int
}

// Collector observes a translation and accumulates Stats.
type Collector struct {
	running Stats
	labels  map[string]bool
	pending []jumpRecord

	done  bool
	final Stats
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		labels: make(map[string]bool),
	}
}

// Func implements sim.Hook.
func (c *Collector) Func(ctx sim.HookCtx) {
	if c.done {
		return
	}

	switch ctx.Pos {
	case core.HookPosComment:
		c.running.Comments++
	case core.HookPosInstCommit:
		c.observe(ctx.Item.(instr.Inst), ctx.Detail.(program.Schema))
	case core.HookPosEnd:
		c.Resolve()
	}
}

func (c *Collector) observe(inst instr.Inst, schema program.Schema) {
	c.running.Insts++

	switch schema.Class {
	case program.ClassLabel:
		name, _ := inst.Target()
		if !c.labels[name] {
			c.labels[name] = true
			c.running.Labels++
		}
	case program.ClassReturn:
		c.running.Jumps++
	case program.ClassJump:
		c.running.Jumps++
		name, _ := inst.Target()
		if c.labels[name] {
			c.running.BackJumps++
			return
		}
		c.pending = append(c.pending, jumpRecord{label: name, order: inst.Order})
	}
}

// Resolve classifies every pending jump against the complete label table and
// freezes the result. Later events are ignored.
func (c *Collector) Resolve() Stats {
	if !c.done {
		c.final = c.resolved()
		c.done = true
	}

	return c.final
}

func (c *Collector) resolved() Stats {
	s := c.running
	for _, j := range c.pending {
		if c.labels[j.label] {
			s.FwJumps++
		} else {
			s.BadJumps++
		}
	}

	return s
}

// Stats returns the final statistics, or a provisional view classifying
// pending jumps against the labels seen so far if the input has not ended.
func (c *Collector) Stats() Stats {
	if c.done {
		return c.final
	}
	return c.resolved()
}

// Resolved reports whether the end of input has been observed.
func (c *Collector) Resolved() bool {
	return c.done
}
