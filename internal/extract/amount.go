package extract

import (
	"strconv"
	"strings"
)

// Amount holds both views of an extracted amount: the cleaned display string
// and, when the residue parses, the numeric magnitude.
type Amount struct {
	Raw string
	Num *float64
}

// ParseAmount converts a free-form currency string ("SGD 1,234.50", "-5.50")
// into an Amount. Everything but digits, the decimal point, and the minus
// sign is stripped before parsing; an empty or malformed residue (e.g.
// "1.2.3") leaves Num nil rather than returning an error.
func ParseAmount(s string) Amount {
	raw := Clean(s)
	out := Amount{Raw: raw}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	residue := b.String()
	if residue == "" {
		return out
	}

	num, err := strconv.ParseFloat(residue, 64)
	if err != nil {
		return out
	}
	out.Num = &num
	return out
}
