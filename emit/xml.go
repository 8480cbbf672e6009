package emit

import (
	"encoding/xml"
	"io"

	"github.com/sarchlab/ippcode/core"
)

type xmlProgram struct {
	XMLName      xml.Name         `xml:"program"`
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  int      `xml:"order,attr"`
	OpCode string   `xml:"opcode,attr"`
	Args   []xmlArg
}

// xmlArg takes its element name (arg1, arg2, arg3) from XMLName.
type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

func toXML(prog *core.Program) xmlProgram {
	doc := xmlProgram{Language: prog.Language}

	for _, inst := range prog.Insts() {
		xi := xmlInstruction{
			Order:  inst.Order,
			OpCode: inst.OpCode,
		}
		for i, op := range inst.Operands {
			xi.Args = append(xi.Args, xmlArg{
				XMLName: xml.Name{Local: argName(i)},
				Type:    argType(op),
				Value:   op.Value,
			})
		}
		doc.Instructions = append(doc.Instructions, xi)
	}

	return doc
}

// WriteXML writes prog as an XML document with a UTF-8 declaration.
func WriteXML(w io.Writer, prog *core.Program) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(toXML(prog)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
