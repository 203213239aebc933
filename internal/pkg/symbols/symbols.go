package symbols

import "strings"

// Display composes the normalized display symbol:
// Display("BTC", "USDT", "PERP") -> "BTC/USDT-PERP".
func Display(base, quote, product string) string {
	return base + "/" + quote + "-" + product
}

// Concat reduces a hyphenated instrument id to the concatenated form
// used by allow-list lookups: "BTC-USDT" -> "BTCUSDT".
func Concat(instID string) string {
	return strings.ReplaceAll(instID, "-", "")
}

var swapSuffixes = []string{"-SWAP", "SWAP", "-PERP", "PERP", "_PERP"}

// TrimSwapSuffix returns the core symbol without a perpetual marker and
// whether one was present ("BTC-USDT-SWAP" -> "BTC-USDT", true).
func TrimSwapSuffix(instID string) (core string, swap bool) {
	for _, suf := range swapSuffixes {
		if strings.HasSuffix(instID, suf) {
			return strings.TrimSuffix(instID, suf), true
		}
	}
	return instID, false
}

// SplitInstID splits a hyphenated instrument id into base and quote,
// tolerating a trailing swap marker: "BTC-USDT-SWAP" -> "BTC", "USDT".
func SplitInstID(instID string) (base, quote string, ok bool) {
	core, _ := TrimSwapSuffix(instID)
	parts := strings.Split(core, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
