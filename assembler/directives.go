package assembler

import (
	"github.com/golang/glog"

	"github.com/Urethramancer/pdp8/asmerr"
	"github.com/Urethramancer/pdp8/isa"
	"github.com/Urethramancer/pdp8/lexer"
)

// directive handles ".name". Only .w exists: it stores one raw word.
func (p *pass) directive(name string) error {
	switch name {
	case "w":
		v, err := p.expectInt("word after .w")
		if err != nil {
			return err
		}
		if v >= isa.WordLimit {
			return asmerr.Rangef("integer exceeds word limit of <%d but got %d", isa.WordLimit, v)
		}
		return p.out.Append(v)

	default:
		return asmerr.Semanticf("unknown directive .%s", name)
	}
}

// origin handles "$ = N", moving the IP to N.
func (p *pass) origin() error {
	if err := p.expectKind(lexer.Equal, "= after $"); err != nil {
		return err
	}
	v, err := p.expectInt(`integer after "$ ="`)
	if err != nil {
		return err
	}
	if v >= isa.WordLimit {
		return asmerr.Rangef("origin %d is outside the %d-word address space", v, isa.WordLimit)
	}
	old := p.out.Seek(int(v))
	glog.V(1).Infof("origin %d -> %d", old, v)
	return nil
}
