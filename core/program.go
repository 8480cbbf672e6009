package core

import "github.com/sarchlab/ippcode/instr"

// Program is the ordered, append-only list of translated instructions.
type Program struct {
	Language string
	insts    []instr.Inst
}

// NewProgram creates an empty program in the given language.
func NewProgram(language string) *Program {
	return &Program{Language: language}
}

// Append numbers inst with the next order and adds it to the program. The
// numbered instruction is returned.
func (p *Program) Append(inst instr.Inst) instr.Inst {
	inst.Order = len(p.insts) + 1
	p.insts = append(p.insts, inst)

	return inst
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.insts)
}

// Inst returns the instruction at index i (order i+1).
func (p *Program) Inst(i int) instr.Inst {
	return p.insts[i]
}

// Insts returns a copy of the instruction list.
func (p *Program) Insts() []instr.Inst {
	out := make([]instr.Inst, len(p.insts))
	copy(out, p.insts)

	return out
}
