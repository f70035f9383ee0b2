package projector

import (
	"strings"

	"github.com/shopspring/decimal"
)

// billion scales a circulating supply expressed in billions of coins.
var billion = decimal.New(1, 9)

// Position classifies a projection row relative to the anchor price.
// It is decided once, in USD, and never recomputed after currency
// conversion.
type Position int

const (
	Below Position = iota // price under the rounded current price
	At                    // the anchor row
	Above                 // price over the rounded current price
)

func (p Position) String() string {
	switch p {
	case Below:
		return "below"
	case At:
		return "at"
	case Above:
		return "above"
	}
	return "unknown"
}

// Row is one line of a projection table. USDPrice is the base-currency
// interval price the row was generated from; Price is the same price in
// the display currency, rounded to the cent.
type Row struct {
	USDPrice  decimal.Decimal
	Price     Money
	Value     Money // portfolio value at that price
	MarketCap Money // implied market capitalization at that price
	Position  Position
}

// Projection is an ordered table of rows in a single display currency.
// It is recomputed wholesale on every input change, never mutated.
type Projection struct {
	Currency string
	Symbol   string
	Rows     []Row
}

// Input carries the scalar inputs of one projection cycle. Values come
// from the caller, never from presentation state.
type Input struct {
	Holdings       float64 // coins held
	Price          float64 // current unit price, USD
	SupplyBillions float64 // circulating supply, billions of coins
	Currency       string  // display currency code, "" means USD
}

// NewProjection generates the full projection table for the given
// inputs. It assumes the input passed Validate; within that domain it
// is a total function and always returns a table.
func NewProjection(in Input, rates ExchangeRateTable) *Projection {
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = "USD"
	}

	anchor := round2(in.Price)
	holdings := decimal.NewFromFloat(in.Holdings)
	supply := decimal.NewFromFloat(in.SupplyBillions).Mul(billion)

	intervals := PriceIntervals(in.Price)
	usd := make([]usdRow, 0, len(intervals))
	for _, p := range intervals {
		pos := Above
		switch p.Cmp(anchor) {
		case -1:
			pos = Below
		case 0:
			pos = At
		}
		usd = append(usd, usdRow{
			price:     p,
			value:     holdings.Mul(p),
			marketCap: supply.Mul(p),
			position:  pos,
		})
	}

	return &Projection{
		Currency: currency,
		Symbol:   rates.Symbol(currency),
		Rows:     convertRows(usd, currency, rates),
	}
}

// Anchor returns the index of the row priced at the current price.
// A generated table always has exactly one.
func (p *Projection) Anchor() int {
	for i, r := range p.Rows {
		if r.Position == At {
			return i
		}
	}
	return -1
}
