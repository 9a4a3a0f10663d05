package money

import (
	"strconv"
	"strings"
)

// DefaultSymbol is the currency symbol prices are rendered with
const DefaultSymbol = "₽"

// Format renders a whole-unit amount as "12 500 ₽": space separated
// thousands with the symbol trailing. An empty symbol omits it.
func Format(amount int64, symbol string) string {
	neg := amount < 0
	magnitude := uint64(amount)
	if neg {
		// two's complement negation also covers math.MinInt64
		magnitude = -magnitude
	}

	s := strconv.FormatUint(magnitude, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + len(symbol) + 2)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}

	if symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}
	return b.String()
}
