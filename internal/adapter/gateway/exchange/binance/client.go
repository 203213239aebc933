package binance

import (
	"context"
	"fmt"

	"github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/exchange/common"
	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
	"github.com/berezovskyivalerii/refdatasvc/internal/pkg/numstr"
	"github.com/berezovskyivalerii/refdatasvc/internal/pkg/symbols"
)

const (
	spotBaseURL    = "https://api.binance.com"
	futuresBaseURL = "https://fapi.binance.com"
)

type Client struct {
	spot  *common.Client
	fut   *common.Client
	allow refdata.AllowList
	mode  refdata.SymbolMode
}

func New(allow refdata.AllowList, mode refdata.SymbolMode) *Client {
	return NewWithBaseURLs(spotBaseURL, futuresBaseURL, allow, mode)
}

func NewWithBaseURLs(spotBase, futBase string, allow refdata.AllowList, mode refdata.SymbolMode) *Client {
	return &Client{
		spot:  common.New(spotBase),
		fut:   common.New(futBase),
		allow: allow,
		mode:  mode,
	}
}

func (Client) Name() string { return "binance" }

type exInfo struct {
	Symbols []struct {
		Symbol  string `json:"symbol"`
		Base    string `json:"baseAsset"`
		Quote   string `json:"quoteAsset"`
		Filters []struct {
			FilterType string `json:"filterType"`
			TickSize   string `json:"tickSize"` // PRICE_FILTER
			StepSize   string `json:"stepSize"` // LOT_SIZE
		} `json:"filters"`
	} `json:"symbols"`
}

func (cl *Client) FetchSpot(ctx context.Context) ([]refdata.Record, error) {
	return cl.fetch(ctx, cl.spot, "/api/v3/exchangeInfo", refdata.ProductSpot)
}

func (cl *Client) FetchPerp(ctx context.Context) ([]refdata.Record, error) {
	return cl.fetch(ctx, cl.fut, "/fapi/v1/exchangeInfo", refdata.ProductPerp)
}

func (cl *Client) fetch(ctx context.Context, c *common.Client, path string, product refdata.ProductType) ([]refdata.Record, error) {
	var v exInfo
	if err := c.GetJSON(ctx, path, nil, &v); err != nil {
		return nil, fmt.Errorf("binance %s: %w", product, err)
	}
	if v.Symbols == nil {
		return nil, fmt.Errorf("binance %s: response has no symbols", product)
	}
	out := make([]refdata.Record, 0, len(cl.allow))
	for _, s := range v.Symbols {
		if !cl.allow.Contains(s.Symbol) {
			continue
		}
		var tick, lot string
		for _, f := range s.Filters {
			// other filter kinds are irrelevant here
			switch f.FilterType {
			case "PRICE_FILTER":
				tick = f.TickSize
			case "LOT_SIZE":
				lot = f.StepSize
			}
		}
		if tick == "" || lot == "" {
			return nil, fmt.Errorf("binance %s: %s: missing PRICE_FILTER or LOT_SIZE", product, s.Symbol)
		}
		rec := refdata.Record{
			Product:  product,
			Exchange: refdata.ExchangeBinance,
			Symbol:   s.Symbol,
			TickSize: tick,
			LotSize:  lot,
		}
		if cl.mode == refdata.ModeNormalized {
			if s.Base == "" || s.Quote == "" {
				return nil, fmt.Errorf("binance %s: %s: missing baseAsset/quoteAsset", product, s.Symbol)
			}
			rec.Symbol = symbols.Display(s.Base, s.Quote, product.Suffix())
			rec.TickSize = numstr.TrimZeros(tick)
			rec.LotSize = numstr.TrimZeros(lot)
		}
		out = append(out, rec)
	}
	return out, nil
}
