package refdata

import "time"

type ProductType string

const (
	ProductSpot ProductType = "spot"
	ProductPerp ProductType = "perp"
)

// Suffix is the product tag used in normalized display symbols.
func (p ProductType) Suffix() string {
	if p == ProductPerp {
		return "PERP"
	}
	return "SPOT"
}

type Exchange string

const (
	ExchangeBinance Exchange = "binance"
	ExchangeOKX     Exchange = "okx"
)

// Record is one reference-data row: the minimum price and quantity
// increments of a single instrument on one exchange.
type Record struct {
	Product  ProductType
	Exchange Exchange
	Symbol   string
	TickSize string
	LotSize  string
}

// StoredRecord is a Record as read back from the store.
type StoredRecord struct {
	Record
	UpdatedAt time.Time
}
