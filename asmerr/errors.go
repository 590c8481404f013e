// Package asmerr holds the error type shared by every assembly stage.
//
// The first error aborts a pass. Callers decide what to do with it; nothing
// below cmd/ terminates the process.
package asmerr

import (
	"errors"
	"fmt"
)

// Kind classifies an assembly failure.
type Kind int

const (
	// Internal is a broken invariant inside the assembler itself.
	Internal Kind = iota
	// Lexical is an unrecognised character or a malformed literal.
	Lexical
	// Syntax is a token of the wrong kind where a specific one was required.
	Syntax
	// Semantic is an unknown mnemonic or directive, or an unresolved label.
	Semantic
	// Range is a value that does not fit the field it is encoded into.
	Range
)

var kindNames = map[Kind]string{
	Internal: "internal",
	Lexical:  "lexical",
	Syntax:   "syntax",
	Semantic: "semantic",
	Range:    "range",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified assembly failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err, keeping it available to errors.Is and errors.As.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Lexicalf reports an unrecognised character or literal.
func Lexicalf(format string, args ...any) error { return New(Lexical, format, args...) }

// Syntaxf reports an unexpected token.
func Syntaxf(format string, args ...any) error { return New(Syntax, format, args...) }

// Semanticf reports a well-formed but meaningless construct.
func Semanticf(format string, args ...any) error { return New(Semantic, format, args...) }

// Rangef reports a value outside its field.
func Rangef(format string, args ...any) error { return New(Range, format, args...) }

// KindOf returns the kind of the first *Error in err's chain.
// Errors that were never classified report Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
