package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/ippcode/program"
)

// Builder can create new translators.
type Builder struct {
	isa      *program.ISA
	header   string
	language string
	hooks    []sim.Hook
}

// NewBuilder returns a builder set up for IPPcode22.
func NewBuilder() Builder {
	return Builder{
		isa:      program.Default(),
		header:   ".IPPcode22",
		language: "IPPcode22",
	}
}

// WithISA sets the instruction set opcodes are looked up in.
func (b Builder) WithISA(isa *program.ISA) Builder {
	b.isa = isa
	return b
}

// WithHeader sets the magic token the first code line must equal.
func (b Builder) WithHeader(header string) Builder {
	b.header = header
	return b
}

// WithLanguage sets the language name recorded on the program.
func (b Builder) WithLanguage(language string) Builder {
	b.language = language
	return b
}

// WithHook attaches a hook to every translator built.
func (b Builder) WithHook(hook sim.Hook) Builder {
	hooks := make([]sim.Hook, 0, len(b.hooks)+1)
	hooks = append(hooks, b.hooks...)
	b.hooks = append(hooks, hook)

	return b
}

// Build creates a translator.
func (b Builder) Build() *Translator {
	if b.isa == nil {
		panic("translator needs an ISA")
	}

	t := &Translator{
		isa:      b.isa,
		header:   b.header,
		language: b.language,
	}

	for _, h := range b.hooks {
		t.AcceptHook(h)
	}

	return t
}
