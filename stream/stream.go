// Package stream stores 12-bit words densely packed, three bytes for every
// two words, and lets the assembler move back and forth over them.
//
// Word i starts at byte i*3/2. An even word owns its first byte and the low
// nibble of the next; an odd word owns the high nibble of its first byte and
// all of the next.
//
//	byte:   0         1          2
//	        [w0 7..0] [w1 3..0 | w0 11..8] [w1 11..4]
package stream

import "github.com/Urethramancer/pdp8/asmerr"

const (
	// MaxWords is the size of the 12-bit address space.
	MaxWords = 1 << 12
	wordMask = MaxWords - 1
)

// Stream is a packed word buffer with an instruction pointer counted in words.
type Stream struct {
	data []byte
	ip   int
}

// New returns an empty stream positioned at word 0.
func New() *Stream {
	return &Stream{}
}

// byteLen is the number of bytes needed to hold words 0..n-1.
func byteLen(n int) int {
	return (n*3 + 1) / 2
}

func offset(ip int) int {
	return ip * 3 / 2
}

// IP returns the current word index.
func (s *Stream) IP() int {
	return s.ip
}

// Len returns the length of the image in bytes.
func (s *Stream) Len() int {
	return len(s.data)
}

// Words returns how many whole words the buffer currently holds.
func (s *Stream) Words() int {
	return len(s.data) * 2 / 3
}

// Bytes returns the packed image. The slice aliases the stream.
func (s *Stream) Bytes() []byte {
	return s.data
}

// grow zero-extends the buffer so that words 0..n-1 fit. It never shrinks.
func (s *Stream) grow(n int) {
	if need := byteLen(n); need > len(s.data) {
		s.data = append(s.data, make([]byte, need-len(s.data))...)
	}
}

// Append writes v at the current IP and advances by one word.
func (s *Stream) Append(v uint16) error {
	if v > wordMask {
		return asmerr.Rangef("word %#x does not fit in 12 bits", v)
	}
	if s.ip >= MaxWords {
		return asmerr.Rangef("word address %d is past the end of memory", s.ip)
	}

	s.grow(s.ip + 1)
	off := offset(s.ip)
	if s.ip%2 == 0 {
		s.data[off] = byte(v)
		s.data[off+1] = s.data[off+1]&0xf0 | byte(v>>8)&0x0f
	} else {
		s.data[off] = s.data[off]&0x0f | byte(v<<4)
		s.data[off+1] = byte(v >> 4)
	}
	s.ip++
	return nil
}

// Seek moves the IP to ip and returns the previous IP. Moving past the end
// zero-fills words 0..ip-1; word ip itself is only stored once something is
// appended there. Existing contents are never touched. A negative ip is
// treated as 0.
func (s *Stream) Seek(ip int) int {
	if ip < 0 {
		ip = 0
	}
	old := s.ip
	s.ip = ip
	s.grow(ip)
	return old
}

// Word decodes the word at the current IP without advancing.
func (s *Stream) Word() (uint16, error) {
	return s.WordAt(s.ip)
}

// WordAt decodes the word at index i.
func (s *Stream) WordAt(i int) (uint16, error) {
	if i < 0 || byteLen(i+1) > len(s.data) {
		return 0, asmerr.New(asmerr.Internal, "no word stored at %d", i)
	}
	return decode(s.data, i), nil
}

func decode(data []byte, i int) uint16 {
	off := offset(i)
	if i%2 == 0 {
		return uint16(data[off]) | uint16(data[off+1]&0x0f)<<8
	}
	return uint16(data[off]>>4) | uint16(data[off+1])<<4
}

// Pack returns the packed image of words, written from index 0.
func Pack(words []uint16) ([]byte, error) {
	s := New()
	for _, w := range words {
		if err := s.Append(w); err != nil {
			return nil, err
		}
	}
	return s.Bytes(), nil
}

// Unpack decodes every whole word in image. A trailing byte that only holds
// half a word is ignored.
func Unpack(image []byte) []uint16 {
	n := len(image) * 2 / 3
	words := make([]uint16, n)
	for i := range words {
		words[i] = decode(image, i)
	}
	return words
}
