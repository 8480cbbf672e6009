package instr

import (
	"strings"
	"unicode/utf8"
)

// Kind is the type tag an argument carries in the translated document.
type Kind string

const (
	KindVar    Kind = "var"
	KindLabel  Kind = "label"
	KindType   Kind = "type"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindNil    Kind = "nil"
)

// IsConstant reports whether the kind is one of the typed constant kinds.
func (k Kind) IsConstant() bool {
	switch k {
	case KindInt, KindBool, KindString, KindNil:
		return true
	}
	return false
}

// Operand is one classified instruction argument. For constants Value holds
// the payload with the "type@" prefix stripped; for every other kind it is
// the token exactly as written.
type Operand struct {
	Kind  Kind
	Value string
}

// Literal rebuilds the source token of the operand.
func (o Operand) Literal() string {
	if o.Kind.IsConstant() {
		return string(o.Kind) + "@" + o.Value
	}
	return o.Value
}

func (o Operand) String() string {
	return string(o.Kind) + ":" + o.Value
}

// Frame prefixes a variable may carry (local, temporary, global).
var frames = map[string]bool{
	"LF": true,
	"TF": true,
	"GF": true,
}

// Punctuation allowed anywhere in an identifier, including its first char.
var identPunct = map[rune]bool{
	'_': true,
	'-': true,
	'$': true,
	'&': true,
	'%': true,
	'*': true,
	'!': true,
	'?': true,
}

// Letters accepted raw inside a string constant besides printable ASCII.
var stringLetters = map[rune]bool{
	'§': true,
	'á': true,
	'č': true,
	'ď': true,
	'é': true,
	'ě': true,
	'í': true,
	'ň': true,
	'ó': true,
	'ř': true,
	'š': true,
	'ť': true,
	'ú': true,
	'ů': true,
	'ý': true,
	'ž': true,
}

var typeKeywords = map[string]Kind{
	"int":    KindInt,
	"bool":   KindBool,
	"string": KindString,
	"nil":    KindNil,
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return isLetter(r) || identPunct[r]
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// IsIdentifier accepts a letter or punctuation character followed by any
// number of letters, digits, or punctuation characters.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}

		if !isIdentPart(r) {
			return false
		}
	}

	return true
}

// IsVariable accepts FRAME@identifier where FRAME is LF, TF, or GF.
func IsVariable(s string) bool {
	frame, name, found := strings.Cut(s, "@")
	if !found || !frames[frame] {
		return false
	}

	return IsIdentifier(name)
}

// IsLabel accepts a bare identifier.
func IsLabel(s string) bool {
	return IsIdentifier(s)
}

// IsTypeKeyword accepts int, bool, string, or nil.
func IsTypeKeyword(s string) bool {
	_, ok := typeKeywords[s]
	return ok
}

// ParseConstant recognises a type@payload literal and returns it with the
// prefix stripped.
func ParseConstant(s string) (Operand, bool) {
	typ, payload, found := strings.Cut(s, "@")
	if !found {
		return Operand{}, false
	}

	kind, ok := typeKeywords[typ]
	if !ok {
		return Operand{}, false
	}

	switch kind {
	case KindInt:
		ok = isIntPayload(payload)
	case KindBool:
		ok = payload == "true" || payload == "false"
	case KindNil:
		ok = payload == "nil"
	case KindString:
		ok = isStringPayload(payload)
	}

	if !ok {
		return Operand{}, false
	}

	return Operand{Kind: kind, Value: payload}, true
}

// ParseSymbol classifies a symbol slot: a typed constant first, a variable
// otherwise.
func ParseSymbol(s string) (Operand, bool) {
	if op, ok := ParseConstant(s); ok {
		return op, true
	}

	if IsVariable(s) {
		return Operand{Kind: KindVar, Value: s}, true
	}

	return Operand{}, false
}

func isIntPayload(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}

	return true
}

// isStringPayload accepts escape sequences \ddd, printable ASCII other than
// backslash and whitespace, and the accented letters in stringLetters.
func isStringPayload(s string) bool {
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			if i+4 > len(s) ||
				!isDigit(rune(s[i+1])) ||
				!isDigit(rune(s[i+2])) ||
				!isDigit(rune(s[i+3])) {
				return false
			}
			i += 4
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return false
		}

		if !(r > ' ' && r <= '~') && !stringLetters[r] {
			return false
		}

		i += size
	}

	return true
}
