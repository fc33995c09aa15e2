// Package eligibility implements the French housing-aid calculators:
// PTZ (zero-interest loan), PAS (social accession loan) and the Action
// Logement employer loan. Each calculator evaluates named conditions and
// reports them all, not just the first failure.
package eligibility

import (
	"fmt"
	"math"
	"strconv"
)

// formatEuro renders an amount with French thousands separators, e.g.
// "49 000".
func formatEuro(amount float64) string {
	s := strconv.FormatInt(int64(math.Round(amount)), 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func euros(amount float64) string {
	return fmt.Sprintf("%s €", formatEuro(amount))
}
