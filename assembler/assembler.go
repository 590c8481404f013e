// Package assembler turns source for the 12-bit machine into a packed
// binary image in a single pass over the tokens. Labels used before they are
// defined are patched in place once their address is known.
package assembler

import (
	"fmt"

	"github.com/Urethramancer/pdp8/stream"
)

// Result is the output of a successful pass.
type Result struct {
	// Image is the packed word stream, three bytes per two words.
	Image []byte
	// Words is the number of word slots the image holds.
	Words int
	// Symbols maps every defined label to its word address.
	Symbols map[string]int
}

// Assembler holds the settings for assembly runs.
type Assembler struct {
	output func() Output
}

// New creates an Assembler writing to a fresh stream.Stream on every run.
func New() *Assembler {
	return &Assembler{
		output: func() Output { return stream.New() },
	}
}

// Assemble is shorthand for New().Assemble(src).
func Assemble(src string) (*Result, error) {
	return New().Assemble(src)
}

// Assemble runs one pass over src. Any error means there is no usable image.
func (asm *Assembler) Assemble(src string) (*Result, error) {
	out := asm.output()
	p := newPass(src, out)
	if err := p.run(); err != nil {
		return nil, fmt.Errorf("assembly failed: %w", err)
	}

	return &Result{
		Image:   out.Bytes(),
		Words:   out.Words(),
		Symbols: p.syms.Labels(),
	}, nil
}
