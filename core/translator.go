package core

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/program"
)

const commentMarker = "#"

// Translator turns source text into a Program. Everything it observes during
// a run is reported through hooks.
type Translator struct {
	sim.HookableBase

	isa      *program.ISA
	header   string
	language string
}

// translation holds the state of one run.
type translation struct {
	t          *Translator
	prog       *Program
	line       int
	headerSeen bool
}

// Translate reads the whole input and returns the translated program. It
// stops at the first violation and returns it as an *Error.
func (t *Translator) Translate(r io.Reader) (*Program, error) {
	tr := &translation{
		t:    t,
		prog: NewProgram(t.language),
	}

	reader := bufio.NewReader(r)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, Errorf(ExitInternal, tr.line, "read input: %v", readErr)
		}

		if raw != "" {
			tr.line++
			if err := tr.processLine(raw); err != nil {
				return nil, err
			}
		}

		if readErr != nil {
			break
		}
	}

	if !tr.headerSeen {
		return nil, Errorf(ExitHeader, 0, "missing header %s", t.header)
	}

	t.InvokeHook(sim.HookCtx{
		Domain: t,
		Pos:    HookPosEnd,
		Item:   tr.prog,
	})

	return tr.prog, nil
}

// TranslateString is a shortcut for translating in-memory source.
func (t *Translator) TranslateString(src string) (*Program, error) {
	return t.Translate(strings.NewReader(src))
}

func (tr *translation) processLine(raw string) error {
	code, hasComment := stripComment(raw)
	if hasComment {
		tr.t.InvokeHook(sim.HookCtx{
			Domain: tr.t,
			Pos:    HookPosComment,
			Item:   tr.line,
		})
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	if !tr.headerSeen {
		return tr.expectHeader(code)
	}

	return tr.dispatch(strings.Fields(code))
}

func stripComment(raw string) (string, bool) {
	code, _, found := strings.Cut(raw, commentMarker)
	return code, found
}

func (tr *translation) expectHeader(code string) error {
	if !strings.EqualFold(code, tr.t.header) {
		return Errorf(ExitHeader, tr.line,
			"expected header %s, got %q", tr.t.header, code)
	}

	tr.headerSeen = true
	tr.t.InvokeHook(sim.HookCtx{
		Domain: tr.t,
		Pos:    HookPosHeader,
		Item:   tr.line,
	})

	return nil
}

func (tr *translation) dispatch(tokens []string) error {
	schema, ok := tr.t.isa.Lookup(tokens[0])
	if !ok {
		return Errorf(ExitOpcode, tr.line, "unknown opcode %q", tokens[0])
	}

	args := tokens[1:]
	if len(args) != schema.Arity() {
		return Errorf(ExitLexSyntax, tr.line,
			"%s takes %d argument(s), got %d",
			schema.Name, schema.Arity(), len(args))
	}

	operands := make([]instr.Operand, len(args))
	for i, slot := range schema.Slots {
		op, ok := parseOperand(slot, args[i])
		if !ok {
			return Errorf(ExitLexSyntax, tr.line,
				"%s: argument %d must be %s, got %q",
				schema.Name, i+1, slot, args[i])
		}
		operands[i] = op
	}

	inst := tr.prog.Append(instr.NewInst(schema.Name, operands...))
	tr.t.InvokeHook(sim.HookCtx{
		Domain: tr.t,
		Pos:    HookPosInstCommit,
		Item:   inst,
		Detail: schema,
	})

	return nil
}

func parseOperand(slot program.Slot, token string) (instr.Operand, bool) {
	switch slot {
	case program.SlotVar:
		if instr.IsVariable(token) {
			return instr.Operand{Kind: instr.KindVar, Value: token}, true
		}
	case program.SlotLabel:
		if instr.IsLabel(token) {
			return instr.Operand{Kind: instr.KindLabel, Value: token}, true
		}
	case program.SlotType:
		if instr.IsTypeKeyword(token) {
			return instr.Operand{Kind: instr.KindType, Value: token}, true
		}
	case program.SlotSymbol:
		return instr.ParseSymbol(token)
	}

	return instr.Operand{}, false
}
