package binance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	cl "github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/exchange/binance"
	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

const exchangeInfoBody = `{
	"symbols": [
		{
			"symbol": "BTCUSDT", "baseAsset": "BTC", "quoteAsset": "USDT",
			"filters": [
				{"filterType": "PRICE_FILTER", "tickSize": "0.01000000"},
				{"filterType": "PERCENT_PRICE", "multiplierUp": "5"},
				{"filterType": "LOT_SIZE", "stepSize": "0.00001000"}
			]
		},
		{
			"symbol": "DOGEUSDT", "baseAsset": "DOGE", "quoteAsset": "USDT",
			"filters": [
				{"filterType": "PRICE_FILTER", "tickSize": "0.00001"},
				{"filterType": "LOT_SIZE", "stepSize": "1"}
			]
		}
	]
}`

func newServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	h := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
	mux.HandleFunc("/api/v3/exchangeInfo", h)
	mux.HandleFunc("/fapi/v1/exchangeInfo", h)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchSpot_RawMode(t *testing.T) {
	ts := newServer(t, exchangeInfoBody)
	allow := refdata.NewAllowList([]string{"BTCUSDT"})
	c := cl.NewWithBaseURLs(ts.URL, ts.URL, allow, refdata.ModeRaw)

	recs, err := c.FetchSpot(context.Background())
	if err != nil {
		t.Fatalf("FetchSpot: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d: %+v", len(recs), recs)
	}
	r := recs[0]
	if r.Product != refdata.ProductSpot || r.Exchange != refdata.ExchangeBinance {
		t.Fatalf("bad identity: %+v", r)
	}
	if r.Symbol != "BTCUSDT" || r.TickSize != "0.01000000" || r.LotSize != "0.00001000" {
		t.Fatalf("raw mode must keep exchange values: %+v", r)
	}
}

func TestFetchSpot_NormalizedMode(t *testing.T) {
	ts := newServer(t, exchangeInfoBody)
	allow := refdata.NewAllowList([]string{"BTCUSDT"})
	c := cl.NewWithBaseURLs(ts.URL, ts.URL, allow, refdata.ModeNormalized)

	recs, err := c.FetchSpot(context.Background())
	if err != nil {
		t.Fatalf("FetchSpot: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Symbol != "BTC/USDT-SPOT" || r.TickSize != "0.01" || r.LotSize != "0.00001" {
		t.Fatalf("bad normalized record: %+v", r)
	}
}

func TestFetchPerp_SuffixAndProduct(t *testing.T) {
	ts := newServer(t, exchangeInfoBody)
	allow := refdata.NewAllowList([]string{"BTCUSDT"})
	c := cl.NewWithBaseURLs(ts.URL, ts.URL, allow, refdata.ModeNormalized)

	recs, err := c.FetchPerp(context.Background())
	if err != nil {
		t.Fatalf("FetchPerp: %v", err)
	}
	if len(recs) != 1 || recs[0].Product != refdata.ProductPerp || recs[0].Symbol != "BTC/USDT-PERP" {
		t.Fatalf("bad perp record: %+v", recs)
	}
}

func TestFetchSpot_MissingSymbolsFails(t *testing.T) {
	ts := newServer(t, `{"timezone": "UTC"}`)
	c := cl.NewWithBaseURLs(ts.URL, ts.URL, refdata.NewAllowList([]string{"BTCUSDT"}), refdata.ModeRaw)

	if _, err := c.FetchSpot(context.Background()); err == nil {
		t.Fatal("expected error for response without symbols")
	}
}

func TestFetchSpot_MissingFilterFails(t *testing.T) {
	body := `{"symbols": [{"symbol": "BTCUSDT", "baseAsset": "BTC", "quoteAsset": "USDT",
		"filters": [{"filterType": "PRICE_FILTER", "tickSize": "0.01"}]}]}`
	ts := newServer(t, body)
	c := cl.NewWithBaseURLs(ts.URL, ts.URL, refdata.NewAllowList([]string{"BTCUSDT"}), refdata.ModeRaw)

	if _, err := c.FetchSpot(context.Background()); err == nil {
		t.Fatal("expected error for allow-listed symbol without LOT_SIZE")
	}
}
