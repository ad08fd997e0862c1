package algebra

import (
	"strings"

	apperrors "github.com/agbru/powkit/internal/errors"
)

// Roman is a simplified, purely additive Roman numeral: symbols appear in
// non-increasing rank and there is no subtractive notation ("IIII", not "IV").
// It supports addition only, which makes it a semigroup without an identity.
type Roman string

// romanRanks lists the symbols from highest to lowest rank.
const romanRanks = "MDCLXVI"

var romanValues = map[byte]int{'M': 1000, 'D': 500, 'C': 100, 'L': 50, 'X': 10, 'V': 5, 'I': 1}

// romanCarries is applied in order, once, after every addition.
var romanCarries = []struct{ from, to string }{
	{"IIIII", "V"},
	{"VV", "X"},
	{"XXXXX", "L"},
	{"LL", "C"},
	{"CCCCC", "D"},
	{"DD", "M"},
}

// ParseRoman validates s as an additive numeral.
func ParseRoman(s string) (Roman, error) {
	if s == "" {
		return "", apperrors.NewValidationError(apperrors.ErrInvalidNumeral, "numeral", "empty numeral", s)
	}
	last := 0
	for i := 0; i < len(s); i++ {
		rank := strings.IndexByte(romanRanks, s[i])
		if rank < 0 {
			return "", apperrors.NewValidationError(apperrors.ErrInvalidNumeral, "numeral", "unknown symbol "+string(s[i]), s)
		}
		if rank < last {
			return "", apperrors.NewValidationError(apperrors.ErrInvalidNumeral, "numeral", "symbols out of order", s)
		}
		last = rank
	}
	return Roman(s), nil
}

// Add merges both numerals rank by rank and carries runs of symbols into the
// next rank (IIIII→V, VV→X, …).
func (r Roman) Add(other Roman) Roman {
	var b strings.Builder
	b.Grow(len(r) + len(other))
	i, j := 0, 0
	for k := 0; k < len(romanRanks); k++ {
		sym := romanRanks[k]
		for i < len(r) && r[i] == sym {
			b.WriteByte(sym)
			i++
		}
		for j < len(other) && other[j] == sym {
			b.WriteByte(sym)
			j++
		}
	}
	result := b.String()
	for _, c := range romanCarries {
		result = strings.ReplaceAll(result, c.from, c.to)
	}
	return Roman(result)
}

// Value returns the integer the numeral denotes.
func (r Roman) Value() int {
	total := 0
	for i := 0; i < len(r); i++ {
		total += romanValues[r[i]]
	}
	return total
}

func (r Roman) String() string { return string(r) }

// RomanAddition is the semigroup (Roman, +).
var RomanAddition = BinaryOp[Roman](Roman.Add)
