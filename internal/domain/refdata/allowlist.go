package refdata

import "strings"

// AllowList is the fixed symbol universe keyed by concatenated
// BASEQUOTE form ("BTCUSDT"). Exchange-native ids must be reduced to
// that form before lookup.
type AllowList map[string]struct{}

func NewAllowList(symbols []string) AllowList {
	a := make(AllowList, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			a[s] = struct{}{}
		}
	}
	return a
}

func (a AllowList) Contains(concat string) bool {
	_, ok := a[strings.ToUpper(concat)]
	return ok
}
