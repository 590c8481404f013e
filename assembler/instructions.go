package assembler

import (
	"github.com/Urethramancer/pdp8/asmerr"
	"github.com/Urethramancer/pdp8/isa"
	"github.com/Urethramancer/pdp8/lexer"
)

// instruction assembles one mnemonic and its operands.
func (p *pass) instruction(name string) error {
	opcode, ok := isa.Opcode(name)
	if !ok {
		return asmerr.Semanticf("unknown instruction %s", name)
	}
	if opcode == isa.OpIOT {
		return p.iot()
	}
	return p.basic(name, opcode)
}

// iot assembles "iot device function".
func (p *pass) iot() error {
	device, err := p.expectByte("device after IOT")
	if err != nil {
		return err
	}
	function, err := p.expectByte("function after IOT")
	if err != nil {
		return err
	}
	return p.out.Append(isa.EncodeIOT(device, function))
}

func (p *pass) expectByte(what string) (uint8, error) {
	v, err := p.expectInt(what)
	if err != nil {
		return 0, err
	}
	if v > isa.MaxIOTField {
		return 0, asmerr.Rangef("expected integer with size <256 for %s but got %d", what, v)
	}
	return uint8(v), nil
}

// basic assembles "op addr", "op [addr]" or "op Z addr".
func (p *pass) basic(name string, opcode uint8) error {
	mode := isa.ModeDirect
	next, err := p.lex.Peek()
	if err != nil {
		return err
	}
	switch {
	case next.Kind == lexer.OpenSquare:
		mode = isa.ModeIndirect
	case next.Is("Z"):
		mode = isa.ModeIndexed
	}
	if mode != isa.ModeDirect {
		if err := p.lex.Eat(); err != nil {
			return err
		}
	}

	addr, err := p.operand(name)
	if err != nil {
		return err
	}
	if addr > isa.MaxAddr {
		return asmerr.Rangef("address %d for %s does not fit in 7 bits", addr, name)
	}
	if mode == isa.ModeIndirect {
		if err := p.expectKind(lexer.CloseSquare, "closing ']'"); err != nil {
			return err
		}
	}
	return p.out.Append(isa.EncodeBasic(opcode, mode, uint8(addr)))
}

// operand resolves an address. Unknown labels are recorded against the
// word about to be emitted and assemble as 0 until they are defined.
func (p *pass) operand(name string) (int, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case lexer.Integer:
		return int(tok.Value), nil
	case lexer.CurrentInstruction:
		// The IP here is where this instruction lands, not a relocatable
		// "current address" in any wider sense.
		return p.out.IP(), nil
	case lexer.Word:
		if addr, ok := p.syms.Lookup(tok.Text); ok {
			return addr, nil
		}
		p.syms.Reference(tok.Text, p.out.IP())
		return 0, nil
	case lexer.EOF:
		return 0, asmerr.Syntaxf("expected value for instruction %s but found nothing", name)
	default:
		return 0, asmerr.Syntaxf("expected integer, $ or label after %s but got %s", name, tok)
	}
}
