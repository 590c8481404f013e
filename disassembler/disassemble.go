// Package disassembler lists the words of a packed image as instructions.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/pdp8/asmerr"
	"github.com/Urethramancer/pdp8/isa"
	"github.com/Urethramancer/pdp8/stream"
)

// Instruction represents a single decoded word at a specific address.
type Instruction struct {
	Address  int
	Word     uint16
	Mnemonic string
	Operands string
}

// Text returns the instruction as source the assembler accepts.
func (i Instruction) Text() string {
	if i.Operands == "" {
		return i.Mnemonic
	}
	return i.Mnemonic + " " + i.Operands
}

func (i Instruction) String() string {
	return fmt.Sprintf("%04d: %03x  %s", i.Address, i.Word, i.Text())
}

// Decode turns one word into an instruction. Words with both mode bits set
// have no source form and come back as raw .w data.
func Decode(addr int, w uint16) Instruction {
	inst := Instruction{Address: addr, Word: w}
	opcode, mode, operand := isa.DecodeBasic(w)
	if opcode == isa.OpIOT {
		device, function := isa.DecodeIOT(w)
		inst.Mnemonic = isa.Mnemonics[opcode]
		inst.Operands = fmt.Sprintf("%d %d", device, function)
		return inst
	}

	switch mode {
	case isa.ModeDirect:
		inst.Operands = fmt.Sprintf("%d", operand)
	case isa.ModeIndirect:
		inst.Operands = fmt.Sprintf("[%d]", operand)
	case isa.ModeIndexed:
		inst.Operands = fmt.Sprintf("Z %d", operand)
	default:
		inst.Mnemonic = ".w"
		inst.Operands = fmt.Sprintf("0x%03x", w)
		return inst
	}
	inst.Mnemonic = isa.Mnemonics[opcode]
	return inst
}

// DecodeImage decodes every word of a packed image.
func DecodeImage(image []byte) ([]Instruction, error) {
	// A packed image of n words is (3n+1)/2 bytes, which is never 1 mod 3.
	if len(image)%3 == 1 {
		return nil, asmerr.Rangef("image length %d does not end on a word boundary", len(image))
	}
	words := stream.Unpack(image)
	out := make([]Instruction, len(words))
	for i, w := range words {
		out[i] = Decode(i, w)
	}
	return out, nil
}

// Disassemble takes a packed image and returns a listing, one word per line.
func Disassemble(image []byte) (string, error) {
	insts, err := DecodeImage(image)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, inst := range insts {
		b.WriteString(inst.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}
