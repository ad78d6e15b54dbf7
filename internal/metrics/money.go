package metrics

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney renders a dollar amount as "$1,234.56". Negative values keep
// the sign ahead of the symbol. Non-finite inputs render as zero.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}

// FormatPerHour renders an optional per-hour figure, using an em dash for
// "not available" so zero and unknown stay visually distinct.
func FormatPerHour(v *float64) string {
	if v == nil {
		return "—"
	}
	return FormatMoney(*v) + "/hr"
}
