package program

import "sync"

var (
	defaultISA     *ISA
	defaultISAOnce sync.Once
)

// Default returns the IPPcode22 instruction set. The returned ISA is shared
// and must not be modified.
func Default() *ISA {
	defaultISAOnce.Do(func() {
		defaultISA = NewISA("IPPcode22")
		defaultISAinit(defaultISA)
	})

	return defaultISA
}

func defaultISAinit(isa *ISA) {
	// frames and calls
	isa.registerNewInst("CREATEFRAME", ClassPlain)
	isa.registerNewInst("PUSHFRAME", ClassPlain)
	isa.registerNewInst("POPFRAME", ClassPlain)
	isa.registerNewInst("DEFVAR", ClassPlain, SlotVar)
	isa.registerNewInst("CALL", ClassJump, SlotLabel)
	isa.registerNewInst("RETURN", ClassReturn)

	// data stack
	isa.registerNewInst("PUSHS", ClassPlain, SlotSymbol)
	isa.registerNewInst("POPS", ClassPlain, SlotVar)

	// data movement and conversions
	isa.registerNewInst("MOVE", ClassPlain, SlotVar, SlotSymbol)
	isa.registerNewInst("INT2CHAR", ClassPlain, SlotVar, SlotSymbol)
	isa.registerNewInst("STRI2INT", ClassPlain, SlotVar, SlotSymbol, SlotSymbol)

	// arithmetic, relational and boolean
	for _, name := range []string{"ADD", "SUB", "MUL", "IDIV", "LT", "GT", "EQ", "AND", "OR"} {
		isa.registerNewInst(name, ClassPlain, SlotVar, SlotSymbol, SlotSymbol)
	}
	isa.registerNewInst("NOT", ClassPlain, SlotVar, SlotSymbol)

	// input and output
	isa.registerNewInst("READ", ClassPlain, SlotVar, SlotType)
	isa.registerNewInst("WRITE", ClassPlain, SlotSymbol)

	// strings
	isa.registerNewInst("CONCAT", ClassPlain, SlotVar, SlotSymbol, SlotSymbol)
	isa.registerNewInst("STRLEN", ClassPlain, SlotVar, SlotSymbol)
	isa.registerNewInst("GETCHAR", ClassPlain, SlotVar, SlotSymbol, SlotSymbol)
	isa.registerNewInst("SETCHAR", ClassPlain, SlotVar, SlotSymbol, SlotSymbol)

	// types
	isa.registerNewInst("TYPE", ClassPlain, SlotVar, SlotSymbol)

	// control flow
	isa.registerNewInst("LABEL", ClassLabel, SlotLabel)
	isa.registerNewInst("JUMP", ClassJump, SlotLabel)
	isa.registerNewInst("JUMPIFEQ", ClassJump, SlotLabel, SlotSymbol, SlotSymbol)
	isa.registerNewInst("JUMPIFNEQ", ClassJump, SlotLabel, SlotSymbol, SlotSymbol)
	isa.registerNewInst("EXIT", ClassPlain, SlotSymbol)

	// debugging
	isa.registerNewInst("DPRINT", ClassPlain, SlotSymbol)
	isa.registerNewInst("BREAK", ClassPlain)
}
