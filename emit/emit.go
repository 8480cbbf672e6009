// Package emit renders a translated program as a structured document.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/instr"
)

// Format selects the document representation.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatXML, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Emit writes prog to w in the given format.
func Emit(w io.Writer, prog *core.Program, format Format) error {
	switch format {
	case FormatXML, "":
		return WriteXML(w, prog)
	case FormatYAML:
		return WriteYAML(w, prog)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// argName is the element name of the operand in slot i (0-based).
func argName(i int) string {
	return fmt.Sprintf("arg%d", i+1)
}

// argType is the type attribute written for an operand.
func argType(op instr.Operand) string {
	return string(op.Kind)
}
