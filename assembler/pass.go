package assembler

import (
	"github.com/Urethramancer/pdp8/asmerr"
	"github.com/Urethramancer/pdp8/lexer"
	"github.com/Urethramancer/pdp8/stream"
	"github.com/Urethramancer/pdp8/symbols"
)

// Output receives encoded words and can be rewound for patching.
// *stream.Stream implements it.
type Output interface {
	symbols.Store
	Bytes() []byte
	Words() int
}

var _ Output = (*stream.Stream)(nil)

// pass is the state of one assembly run. Nothing outlives it except the image.
type pass struct {
	lex  *lexer.Lexer
	syms *symbols.Table
	out  Output
}

func newPass(src string, out Output) *pass {
	return &pass{
		lex:  lexer.New(src),
		syms: symbols.New(),
		out:  out,
	}
}

// run consumes every token. The first error stops the pass.
func (p *pass) run() error {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return err
		}

		switch tok.Kind {
		case lexer.EOF:
			return p.syms.Check()
		case lexer.DotWord:
			err = p.directive(tok.Text)
		case lexer.CurrentInstruction:
			err = p.origin()
		case lexer.Word:
			err = p.word(tok.Text)
		default:
			err = asmerr.Syntaxf("unexpected token %s", tok)
		}
		if err != nil {
			return err
		}
	}
}

// word handles a label definition or an instruction.
func (p *pass) word(name string) error {
	next, err := p.lex.Peek()
	if err != nil {
		return err
	}
	if next.Kind == lexer.Colon {
		if err := p.lex.Eat(); err != nil {
			return err
		}
		return p.syms.Define(name, p.out)
	}
	return p.instruction(name)
}

// expectInt consumes an integer token.
func (p *pass) expectInt(what string) (uint16, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case lexer.Integer:
		return tok.Value, nil
	case lexer.EOF:
		return 0, asmerr.Syntaxf("expected %s but found end of input", what)
	default:
		return 0, asmerr.Syntaxf("expected %s but found %s", what, tok)
	}
}

// expectKind consumes a token that must be of kind k.
func (p *pass) expectKind(k lexer.Kind, what string) error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	if tok.Kind != k {
		return asmerr.Syntaxf("expected %s but found %s", what, tok)
	}
	return nil
}
