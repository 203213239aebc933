package refdata

import "fmt"

// SymbolMode selects how fetchers shape records: ModeRaw keeps the
// exchange-native symbol and numeric strings untouched, ModeNormalized
// composes a BASE/QUOTE-PRODUCT display symbol and trims trailing
// zeroes from tick/lot sizes.
type SymbolMode string

const (
	ModeRaw        SymbolMode = "raw"
	ModeNormalized SymbolMode = "normalized"
)

func ParseSymbolMode(s string) (SymbolMode, error) {
	switch SymbolMode(s) {
	case ModeRaw, ModeNormalized:
		return SymbolMode(s), nil
	}
	return "", fmt.Errorf("unknown symbol mode %q", s)
}
