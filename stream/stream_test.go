package stream

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/Urethramancer/pdp8/asmerr"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		words []uint16
		hex   string
	}{
		{"One", []uint16{0xabc}, "bc0a"},
		{"Pair", []uint16{0xabc, 0xdef}, "bcfade"},
		{"Three", []uint16{0x001, 0x002, 0xfff}, "012000ff0f"},
		{"Zero", []uint16{0, 0}, "000000"},
	}
	for _, tc := range tests {
		got, err := Pack(tc.words)
		if err != nil {
			t.Fatalf("[%s] %v", tc.name, err)
		}
		if want := mustHex(t, tc.hex); !bytes.Equal(got, want) {
			t.Errorf("[%s] got % X, want % X", tc.name, got, want)
		}
	}
}

func TestPackingInvariant(t *testing.T) {
	for n := 0; n <= 33; n++ {
		words := make([]uint16, n)
		for i := range words {
			words[i] = uint16((i*0x9e3 + 0x5a) & wordMask)
		}
		image, err := Pack(words)
		if err != nil {
			t.Fatal(err)
		}
		if want := (n*3 + 1) / 2; len(image) != want {
			t.Errorf("n=%d: %d bytes, want %d", n, len(image), want)
		}
		got := Unpack(image)
		if len(got) != n {
			t.Fatalf("n=%d: unpacked %d words", n, len(got))
		}
		for i := range words {
			if got[i] != words[i] {
				t.Errorf("n=%d: word %d = %#x, want %#x", n, i, got[i], words[i])
			}
		}
	}
}

func TestRewriteKeepsNeighbours(t *testing.T) {
	s := New()
	for _, w := range []uint16{0xfff, 0xfff, 0xfff, 0xfff} {
		if err := s.Append(w); err != nil {
			t.Fatal(err)
		}
	}
	for _, i := range []int{1, 2} {
		s.Seek(i)
		if err := s.Append(0); err != nil {
			t.Fatal(err)
		}
	}
	want := []uint16{0xfff, 0, 0, 0xfff}
	for i, w := range want {
		got, err := s.WordAt(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("word %d = %#x, want %#x", i, got, w)
		}
	}
}

func TestSeek(t *testing.T) {
	s := New()
	if err := s.Append(0x123); err != nil {
		t.Fatal(err)
	}
	if old := s.Seek(16); old != 1 {
		t.Errorf("Seek returned %d, want 1", old)
	}
	if s.Len() != 24 {
		t.Errorf("len after seek = %d, want 24", s.Len())
	}
	if err := s.Append(0x456); err != nil {
		t.Fatal(err)
	}
	if s.IP() != 17 || s.Len() != 26 {
		t.Errorf("ip=%d len=%d, want 17 and 26", s.IP(), s.Len())
	}
	for i := 1; i < 16; i++ {
		if w, _ := s.WordAt(i); w != 0 {
			t.Errorf("word %d = %#x, want 0", i, w)
		}
	}

	// Seeking backwards never shrinks the buffer.
	s.Seek(0)
	if s.Len() != 26 {
		t.Errorf("len after backward seek = %d, want 26", s.Len())
	}
	w, err := s.Word()
	if err != nil {
		t.Fatal(err)
	}
	if w != 0x123 || s.IP() != 0 {
		t.Errorf("Word() = %#x at ip %d", w, s.IP())
	}
}

func TestWordPastEnd(t *testing.T) {
	s := New()
	s.Seek(4)
	if _, err := s.Word(); err == nil {
		t.Error("decoding an unwritten slot past the buffer should fail")
	}
}

func TestAppendRange(t *testing.T) {
	s := New()
	if err := s.Append(0x1000); asmerr.KindOf(err) != asmerr.Range {
		t.Errorf("13-bit word: got %v, want range error", err)
	}
	s.Seek(MaxWords - 1)
	if err := s.Append(1); err != nil {
		t.Fatalf("last word: %v", err)
	}
	if err := s.Append(1); asmerr.KindOf(err) != asmerr.Range {
		t.Errorf("past memory: got %v, want range error", err)
	}
	if got, want := s.Len(), (MaxWords*3+1)/2; got != want {
		t.Errorf("full image is %d bytes, want %d", got, want)
	}
}
