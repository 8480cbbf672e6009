package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/ippcode/instr"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// TraceHook logs every translation event at LevelTrace.
type TraceHook struct{}

// Func implements sim.Hook.
func (TraceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case HookPosHeader:
		Trace("Translate", "Behavior", "Header", "Line", ctx.Item)
	case HookPosComment:
		Trace("Translate", "Behavior", "Comment", "Line", ctx.Item)
	case HookPosInstCommit:
		inst := ctx.Item.(instr.Inst)
		Trace("Translate",
			"Behavior", "Commit",
			"Order", inst.Order,
			"OpCode", inst.OpCode,
			"Operands", inst.Operands,
		)
	case HookPosEnd:
		prog := ctx.Item.(*Program)
		Trace("Translate", "Behavior", "End", "Insts", prog.Len())
	}
}

// PrintProgram writes a table listing of prog to w.
func PrintProgram(w io.Writer, prog *Program) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s (%d instructions)", prog.Language, prog.Len()))
	t.AppendHeader(table.Row{"Order", "OpCode", "Arg1", "Arg2", "Arg3"})

	for _, inst := range prog.Insts() {
		row := table.Row{inst.Order, inst.OpCode}
		for i := 0; i < 3; i++ {
			cell := ""
			if i < len(inst.Operands) {
				cell = describeOperand(inst.Operands[i])
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	t.Render()
}

func describeOperand(op instr.Operand) string {
	var sb strings.Builder
	sb.WriteString(op.Value)
	sb.WriteString(" (")
	sb.WriteString(string(op.Kind))
	sb.WriteString(")")

	return sb.String()
}
