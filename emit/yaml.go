package emit

import (
	"io"

	"github.com/sarchlab/ippcode/core"
	"gopkg.in/yaml.v3"
)

type yamlProgram struct {
	Language     string            `yaml:"language"`
	Instructions []yamlInstruction `yaml:"instructions"`
}

type yamlInstruction struct {
	Order  int       `yaml:"order"`
	OpCode string    `yaml:"opcode"`
	Args   []yamlArg `yaml:"args,omitempty"`
}

type yamlArg struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

func toYAML(prog *core.Program) yamlProgram {
	doc := yamlProgram{
		Language:     prog.Language,
		Instructions: []yamlInstruction{},
	}

	for _, inst := range prog.Insts() {
		yi := yamlInstruction{
			Order:  inst.Order,
			OpCode: inst.OpCode,
		}
		for i, op := range inst.Operands {
			yi.Args = append(yi.Args, yamlArg{
				Name:  argName(i),
				Type:  argType(op),
				Value: op.Value,
			})
		}
		doc.Instructions = append(doc.Instructions, yi)
	}

	return doc
}

// WriteYAML writes prog as a YAML document.
func WriteYAML(w io.Writer, prog *core.Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(toYAML(prog)); err != nil {
		return err
	}

	return enc.Close()
}
