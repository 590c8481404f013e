package isa

import "testing"

func TestOpcode(t *testing.T) {
	tests := []struct {
		name string
		want uint8
		ok   bool
	}{
		{"and", OpAND, true},
		{"AND", OpAND, true},
		{"tad", OpTAD, true},
		{"ISZ", OpISZ, true},
		{"dca", OpDCA, true},
		{"CALL", OpCALL, true},
		{"jmp", OpJMP, true},
		{"IOT", OpIOT, true},
		{"opr", OpOPR, true},
		{"Jmp", 0, false},
		{"nop", 0, false},
	}
	for _, tt := range tests {
		got, ok := Opcode(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Opcode(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBasicRoundTrip(t *testing.T) {
	for op := uint8(0); op < 8; op++ {
		for _, mode := range []uint8{ModeDirect, ModeIndirect, ModeIndexed} {
			for _, addr := range []uint8{0, 1, 64, MaxAddr} {
				w := EncodeBasic(op, mode, addr)
				if w >= WordLimit {
					t.Fatalf("EncodeBasic(%d,%d,%d) = %#x exceeds 12 bits", op, mode, addr, w)
				}
				gop, gmode, gaddr := DecodeBasic(w)
				if gop != op || gmode != mode || gaddr != addr {
					t.Errorf("round trip (%d,%d,%d) -> (%d,%d,%d)", op, mode, addr, gop, gmode, gaddr)
				}
			}
		}
	}
}

func TestEncodeBasicLayout(t *testing.T) {
	// jmp [5]: opcode 101, mode 01, addr 0000101
	if got, want := EncodeBasic(OpJMP, ModeIndirect, 5), uint16(0b0000101_01_101); got != want {
		t.Errorf("got %#b, want %#b", got, want)
	}
}

func TestIOT(t *testing.T) {
	w := EncodeIOT(3, 5)
	if op, _, _ := DecodeBasic(w); op != OpIOT {
		t.Errorf("opcode = %d, want %d", op, OpIOT)
	}
	dev, fn := DecodeIOT(w)
	if dev != 3 || fn != 5 {
		t.Errorf("iot 3 5 decoded as %d %d", dev, fn)
	}
}

// Fields wider than their slot are accepted and mangled, never rejected.
func TestIOTTruncation(t *testing.T) {
	tests := []struct {
		device, function uint8
		wantDev, wantFn  uint8
	}{
		{63, 7, 63, 7},
		{64, 0, 0, 1},   // device bit 6 lands in function bit 0
		{3, 8, 3, 0},    // function bit 3 is past bit 11
		{255, 0, 63, 3}, // device bits 6-7 land in function bits 0-1
	}
	for _, tt := range tests {
		w := EncodeIOT(tt.device, tt.function)
		if w >= WordLimit {
			t.Errorf("iot %d %d encoded past 12 bits: %#x", tt.device, tt.function, w)
		}
		dev, fn := DecodeIOT(w)
		if dev != tt.wantDev || fn != tt.wantFn {
			t.Errorf("iot %d %d decoded as %d %d, want %d %d",
				tt.device, tt.function, dev, fn, tt.wantDev, tt.wantFn)
		}
	}
}
