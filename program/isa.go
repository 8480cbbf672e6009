// Package program describes the instruction set the translator accepts.
package program

import (
	"sort"
	"strings"
)

// Slot is the kind of argument an instruction expects at one position.
type Slot int

const (
	SlotVar Slot = iota
	SlotLabel
	SlotType
	// SlotSymbol accepts a variable or a typed constant. The concrete kind
	// is decided when the argument is validated.
	SlotSymbol
)

func (s Slot) String() string {
	switch s {
	case SlotVar:
		return "var"
	case SlotLabel:
		return "label"
	case SlotType:
		return "type"
	case SlotSymbol:
		return "symb"
	}
	return "unknown"
}

// Class groups opcodes by how they take part in control flow.
type Class int

const (
	ClassPlain Class = iota
	// ClassLabel defines a label.
	ClassLabel
	// ClassJump transfers control to the label in its first slot.
	ClassJump
	// ClassReturn transfers control without naming a label.
	ClassReturn
)

// Schema is the fixed argument layout of one opcode.
type Schema struct {
	Name  string
	Slots []Slot
	Class Class
}

// Arity returns the exact number of arguments the opcode takes.
func (s Schema) Arity() int {
	return len(s.Slots)
}

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from canonical opcode name to its schema.
	nameToSchema map[string]Schema
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		nameToSchema: make(map[string]Schema),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register a new instruction to the ISA. A later registration of the same
// name replaces the earlier one.
func (isa *ISA) registerNewInst(name string, class Class, slots ...Slot) {
	name = strings.ToUpper(name)
	isa.nameToSchema[name] = Schema{
		Name:  name,
		Slots: slots,
		Class: class,
	}
}

// Lookup finds the schema of an opcode, matching the name case-insensitively.
func (isa *ISA) Lookup(opcode string) (Schema, bool) {
	s, ok := isa.nameToSchema[strings.ToUpper(opcode)]
	return s, ok
}

// Opcodes lists every registered opcode in alphabetical order.
func (isa *ISA) Opcodes() []string {
	names := make([]string, 0, len(isa.nameToSchema))
	for name := range isa.nameToSchema {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
