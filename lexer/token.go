package lexer

import "fmt"

// Kind identifies a token variant.
type Kind int

const (
	// EOF marks the end of input.
	EOF Kind = iota
	// Word is a bare identifier, case preserved.
	Word
	// DotWord is a directive name following '.'.
	DotWord
	// Integer is a numeric literal.
	Integer
	// OpenSquare is '['.
	OpenSquare
	// CloseSquare is ']'.
	CloseSquare
	// Colon is ':'.
	Colon
	// Equal is '=', only meaningful in "$ = N".
	Equal
	// CurrentInstruction is a '$' with no literal attached.
	CurrentInstruction
)

var kindNames = map[Kind]string{
	EOF:                "end of input",
	Word:               "word",
	DotWord:            "directive",
	Integer:            "integer",
	OpenSquare:         "[",
	CloseSquare:        "]",
	Colon:              ":",
	Equal:              "=",
	CurrentInstruction: "$",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Text slices the source buffer for Word and
// DotWord; Value is set for Integer.
type Token struct {
	Kind  Kind
	Text  string
	Value uint16
}

// Is reports whether t is a Word spelled exactly w.
func (t Token) Is(w string) bool {
	return t.Kind == Word && t.Text == w
}

func (t Token) String() string {
	switch t.Kind {
	case Word:
		return fmt.Sprintf("Word(%q)", t.Text)
	case DotWord:
		return fmt.Sprintf("DotWord(%q)", t.Text)
	case Integer:
		return fmt.Sprintf("Int(%d)", t.Value)
	default:
		return t.Kind.String()
	}
}
