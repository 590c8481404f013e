// Package lexer splits assembly source into tokens on demand.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/Urethramancer/pdp8/asmerr"
)

// Lexer produces tokens lazily from a source string. Token text borrows
// from the source, which must stay alive for the whole pass.
type Lexer struct {
	src string
	pos int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Next consumes and returns the next token. At the end of input it returns
// a token of kind EOF and a nil error, every time it is called.
func (l *Lexer) Next() (Token, error) {
	for {
		l.skipSpace()
		if l.pos >= len(l.src) {
			return Token{Kind: EOF}, nil
		}

		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case r == ';':
			l.skipComment()
			continue

		case r == '$':
			l.pos += size
			lit := l.scanWhile(isAlnum)
			if lit == "" {
				return Token{Kind: CurrentInstruction}, nil
			}
			return l.integer(lit)

		case r == '=':
			l.pos += size
			return Token{Kind: Equal}, nil

		case r == '[':
			l.pos += size
			return Token{Kind: OpenSquare}, nil

		case r == ']':
			l.pos += size
			return Token{Kind: CloseSquare}, nil

		case r == ':':
			l.pos += size
			return Token{Kind: Colon}, nil

		case r == '.':
			l.pos += size
			return Token{Kind: DotWord, Text: l.scanWhile(isAlnum)}, nil

		case unicode.IsLetter(r):
			return Token{Kind: Word, Text: l.scanWhile(isWordRune)}, nil

		case unicode.IsDigit(r):
			return l.integer(l.scanWhile(isAlnum))

		default:
			return Token{}, asmerr.Lexicalf("unparsable character %q", r)
		}
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	pos := l.pos
	tok, err := l.Next()
	l.pos = pos
	return tok, err
}

// Eat consumes one token and discards it. Running out of input is an error.
func (l *Lexer) Eat() error {
	tok, err := l.Next()
	if err != nil {
		return err
	}
	if tok.Kind == EOF {
		return asmerr.Syntaxf("expected a token to consume but found end of input")
	}
	return nil
}

func (l *Lexer) integer(lit string) (Token, error) {
	v, err := ParseInt(lit)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: Integer, Value: v}, nil
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// skipComment stops before the newline so line structure is left to skipSpace.
func (l *Lexer) skipComment() {
	l.scanWhile(func(r rune) bool { return r != '\n' })
}

func (l *Lexer) scanWhile(p func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !p(r) {
			break
		}
		l.pos += size
	}
	return l.src[start:l.pos]
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordRune(r rune) bool {
	return isAlnum(r) || r == '_'
}
