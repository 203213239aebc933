package okx

import (
	"context"
	"fmt"

	"github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/exchange/common"
	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
	"github.com/berezovskyivalerii/refdatasvc/internal/pkg/numstr"
	"github.com/berezovskyivalerii/refdatasvc/internal/pkg/symbols"
)

const baseURL = "https://www.okx.com"

type Client struct {
	c     *common.Client
	allow refdata.AllowList
	mode  refdata.SymbolMode
}

func New(allow refdata.AllowList, mode refdata.SymbolMode) *Client {
	return NewWithBaseURL(baseURL, allow, mode)
}

func NewWithBaseURL(base string, allow refdata.AllowList, mode refdata.SymbolMode) *Client {
	return &Client{c: common.New(base), allow: allow, mode: mode}
}

func (Client) Name() string { return "okx" }

type instruments struct {
	Data []struct {
		InstID   string `json:"instId"` // AAA-USDT, AAA-USDT-SWAP
		BaseCcy  string `json:"baseCcy"`
		QuoteCcy string `json:"quoteCcy"`
		TickSz   string `json:"tickSz"`
		LotSz    string `json:"lotSz"`
	} `json:"data"`
}

func (cl *Client) FetchSpot(ctx context.Context) ([]refdata.Record, error) {
	return cl.fetch(ctx, "SPOT", refdata.ProductSpot)
}

func (cl *Client) FetchPerp(ctx context.Context) ([]refdata.Record, error) {
	return cl.fetch(ctx, "SWAP", refdata.ProductPerp)
}

func (cl *Client) fetch(ctx context.Context, instType string, product refdata.ProductType) ([]refdata.Record, error) {
	var v instruments
	if err := cl.c.GetJSON(ctx, "/api/v5/public/instruments", map[string]string{"instType": instType}, &v); err != nil {
		return nil, fmt.Errorf("okx %s: %w", product, err)
	}
	if v.Data == nil {
		return nil, fmt.Errorf("okx %s: response has no data", product)
	}
	out := make([]refdata.Record, 0, len(cl.allow))
	for _, it := range v.Data {
		// "BTC-USDT-SWAP" carries a perp marker that must not take part
		// in allow-list matching.
		core, _ := symbols.TrimSwapSuffix(it.InstID)
		if !cl.allow.Contains(symbols.Concat(core)) {
			continue
		}
		if it.TickSz == "" || it.LotSz == "" {
			return nil, fmt.Errorf("okx %s: %s: missing tickSz/lotSz", product, it.InstID)
		}
		rec := refdata.Record{
			Product:  product,
			Exchange: refdata.ExchangeOKX,
			Symbol:   it.InstID,
			TickSize: it.TickSz,
			LotSize:  it.LotSz,
		}
		if cl.mode == refdata.ModeNormalized {
			base, quote := it.BaseCcy, it.QuoteCcy
			if base == "" || quote == "" {
				// swap instruments leave baseCcy/quoteCcy empty
				var ok bool
				if base, quote, ok = symbols.SplitInstID(it.InstID); !ok {
					return nil, fmt.Errorf("okx %s: %s: cannot derive base/quote", product, it.InstID)
				}
			}
			rec.Symbol = symbols.Display(base, quote, product.Suffix())
			rec.TickSize = numstr.TrimZeros(it.TickSz)
			rec.LotSize = numstr.TrimZeros(it.LotSz)
		}
		out = append(out, rec)
	}
	return out, nil
}
