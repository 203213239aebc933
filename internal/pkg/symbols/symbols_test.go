package symbols_test

import (
	"testing"

	"github.com/berezovskyivalerii/refdatasvc/internal/pkg/symbols"
)

func TestDisplay(t *testing.T) {
	if got := symbols.Display("BTC", "USDT", "PERP"); got != "BTC/USDT-PERP" {
		t.Fatalf("got %q", got)
	}
	if got := symbols.Display("ETH", "USDT", "SPOT"); got != "ETH/USDT-SPOT" {
		t.Fatalf("got %q", got)
	}
}

func TestConcat(t *testing.T) {
	if got := symbols.Concat("BTC-USDT"); got != "BTCUSDT" {
		t.Fatalf("got %q", got)
	}
	if got := symbols.Concat("BTCUSDT"); got != "BTCUSDT" {
		t.Fatalf("got %q", got)
	}
}

func TestTrimSwapSuffix(t *testing.T) {
	core, swap := symbols.TrimSwapSuffix("BTC-USDT-SWAP")
	if !swap || core != "BTC-USDT" {
		t.Fatalf("got %q swap=%v", core, swap)
	}
	core, swap = symbols.TrimSwapSuffix("BTC-USDT")
	if swap || core != "BTC-USDT" {
		t.Fatalf("got %q swap=%v", core, swap)
	}
}

func TestSplitInstID(t *testing.T) {
	base, quote, ok := symbols.SplitInstID("BTC-USDT")
	if !ok || base != "BTC" || quote != "USDT" {
		t.Fatalf("got %q %q ok=%v", base, quote, ok)
	}
	base, quote, ok = symbols.SplitInstID("SOL-USDT-SWAP")
	if !ok || base != "SOL" || quote != "USDT" {
		t.Fatalf("got %q %q ok=%v", base, quote, ok)
	}
	if _, _, ok = symbols.SplitInstID("BTCUSDT"); ok {
		t.Fatal("expected no split for concatenated id")
	}
}
