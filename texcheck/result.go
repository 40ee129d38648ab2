// Package texcheck validates LaTeX formula sources by invoking an external
// checker binary, caching past classifications in memory.
package texcheck

import (
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// ErrCorruptOutput is returned when the checker emits a payload that is
// not valid UTF-8. This indicates an incompatible or broken checker
// binary, not an invalid formula.
var ErrCorruptOutput = zerr.New("corrupted formula checker output")

// Kind enumerates the classification outcomes of a formula check.
type Kind uint8

const (
	// Valid means the checker accepted the formula.
	Valid Kind = iota
	// UnknownFunction means the formula uses a function the checker does
	// not support.
	UnknownFunction
	// SyntaxError means the formula failed to parse.
	SyntaxError
	// LexingError means the formula contains invalid tokens.
	LexingError
	// UnknownError covers every checker response outside the contract.
	UnknownError
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case UnknownFunction:
		return "unknown function"
	case SyntaxError:
		return "syntax error"
	case LexingError:
		return "lexing error"
	default:
		return "unknown error"
	}
}

// Result classifies one checked formula.
type Result struct {
	Kind Kind
	// Text is the checker payload: the normalized formula for Valid, the
	// offending function for UnknownFunction, empty otherwise.
	Text string
}

// classify maps the checker's stdout to a Result. The first byte selects
// the variant, the remaining bytes are the UTF-8 payload.
func classify(output []byte) (Result, error) {
	if len(output) == 0 {
		return Result{Kind: UnknownError}, nil
	}

	rest := output[1:]
	if !utf8.Valid(rest) {
		return Result{}, zerr.With(ErrCorruptOutput, "first_byte", string(output[0]))
	}

	switch output[0] {
	case '+':
		return Result{Kind: Valid, Text: string(rest)}, nil
	case 'F':
		return Result{Kind: UnknownFunction, Text: string(rest)}, nil
	case 'S':
		return Result{Kind: SyntaxError}, nil
	case 'E':
		return Result{Kind: LexingError}, nil
	default:
		return Result{Kind: UnknownError}, nil
	}
}
