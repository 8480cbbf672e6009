package instr

import (
	"fmt"
	"strings"
)

// Inst is one translated instruction.
type Inst struct {
	// 1-based position among the committed instructions of the program.
	Order    int
	OpCode   string
	Operands []Operand
}

// NewInst creates an instruction that owns a copy of the given operands.
func NewInst(opcode string, operands ...Operand) Inst {
	ops := make([]Operand, len(operands))
	copy(ops, operands)

	return Inst{
		OpCode:   opcode,
		Operands: ops,
	}
}

// Target returns the label operand of the instruction, if its first operand
// is a label.
func (i Inst) Target() (string, bool) {
	if len(i.Operands) == 0 || i.Operands[0].Kind != KindLabel {
		return "", false
	}
	return i.Operands[0].Value, true
}

func (i Inst) String() string {
	parts := make([]string, 0, len(i.Operands)+1)
	parts = append(parts, i.OpCode)
	for _, op := range i.Operands {
		parts = append(parts, op.Literal())
	}

	return fmt.Sprintf("%d: %s", i.Order, strings.Join(parts, " "))
}
