package lexer

import (
	"strconv"
	"strings"

	"github.com/Urethramancer/pdp8/asmerr"
)

// radixPrefixes maps a literal prefix to its base. "0o" is base 12, not 8.
var radixPrefixes = []struct {
	prefix string
	base   int
}{
	{"0b", 2},
	{"0x", 16},
	{"0o", 12},
}

// ParseInt parses a numeric literal. Unprefixed literals are decimal.
func ParseInt(lit string) (uint16, error) {
	base := 10
	digits := lit
	for _, r := range radixPrefixes {
		if strings.HasPrefix(lit, r.prefix) {
			base = r.base
			digits = lit[len(r.prefix):]
			break
		}
	}

	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, asmerr.Wrap(asmerr.Lexical, err, "unparsable integer literal %q", lit)
	}
	return uint16(v), nil
}
