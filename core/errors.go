package core

import (
	"errors"
	"fmt"
)

// ExitCode is the process status a failure is reported with.
type ExitCode int

const (
	ExitOK ExitCode = 0
	// ExitParam marks an invalid command-line configuration.
	ExitParam ExitCode = 10
	// ExitOutputFile marks a stats destination that cannot be opened or is
	// requested twice.
	ExitOutputFile ExitCode = 12
	// ExitHeader marks a missing or incorrect header line.
	ExitHeader ExitCode = 21
	// ExitOpcode marks an unknown opcode.
	ExitOpcode ExitCode = 22
	// ExitLexSyntax marks any other lexical or syntactic violation.
	ExitLexSyntax ExitCode = 23
	// ExitInternal marks failures that are not the input's fault, such as a
	// broken output stream.
	ExitInternal ExitCode = 99
)

// Error is a classified failure. Line is the 1-based source line the failure
// was detected on, or 0 if it is not tied to the input.
type Error struct {
	Code ExitCode
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Errorf creates an Error with a formatted message.
func Errorf(code ExitCode, line int, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the exit code that err should be reported with.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ExitInternal
}
