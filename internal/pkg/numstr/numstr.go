package numstr

import (
	"strings"

	"github.com/govalues/decimal"
)

// TrimZeros canonicalizes a decimal string by dropping trailing zeroes:
// "0.01000000" -> "0.01". Input that does not parse as a decimal
// collapses to "0".
func TrimZeros(s string) string {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return "0"
	}
	return d.Trim(0).String()
}
