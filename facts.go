package projector

import (
	"strings"

	"github.com/shopspring/decimal"
)

var million = decimal.New(1, 6)

// Facts is the portfolio metrics block shown next to the projection
// table: the current valuation and what it would take to reach a $1M
// portfolio, all in the display currency.
type Facts struct {
	Currency       string
	Symbol         string
	Holdings       Quantity
	Price          Money // current unit price
	Value          Money // current portfolio value
	MarketCap      Money // current market capitalization
	PriceFor1M     Money // unit price needed for a $1M portfolio
	MarketCapFor1M Money // market cap implied by that price
	BTCMarketCap   Money   // current Bitcoin market cap, zero when unknown
	BTCRatio       float64 // MarketCapFor1M over the Bitcoin market cap, USD on USD
	Progress       Percent // current value against the $1M mark
}

// NewFacts computes the metrics for the given inputs. Unlike
// NewProjection it tolerates zero holdings, which is the state right
// after a fetch: the price needed for $1M is then defined as zero, not
// a division. btcMarketCapUSD may be zero when the fetch collaborator
// had nothing; the ratio degrades to zero.
func NewFacts(in Input, btcMarketCapUSD float64, rates ExchangeRateTable) Facts {
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = "USD"
	}
	rate := decimal.NewFromFloat(rates.Rate(currency))

	holdings := decimal.NewFromFloat(in.Holdings)
	price := decimal.NewFromFloat(in.Price)
	supply := decimal.NewFromFloat(in.SupplyBillions).Mul(billion)

	valueUSD := holdings.Mul(price)
	marketCapUSD := supply.Mul(price)

	var priceFor1M decimal.Decimal // stays zero without holdings
	if holdings.IsPositive() {
		priceFor1M = million.Div(holdings)
	}
	marketCapFor1M := priceFor1M.Mul(supply)

	btc := decimal.NewFromFloat(btcMarketCapUSD)
	var ratio float64
	if btc.IsPositive() {
		ratio, _ = marketCapFor1M.Div(btc).Float64()
	}

	progress, _ := valueUSD.Div(million).Float64()

	return Facts{
		Currency:       currency,
		Symbol:         rates.Symbol(currency),
		Holdings:       Q(holdings),
		Price:          M(price.Mul(rate), currency),
		Value:          M(valueUSD.Mul(rate), currency),
		MarketCap:      M(marketCapUSD.Mul(rate), currency),
		PriceFor1M:     M(priceFor1M.Mul(rate), currency),
		MarketCapFor1M: M(marketCapFor1M.Mul(rate), currency),
		BTCMarketCap:   M(btc.Mul(rate), currency),
		BTCRatio:       ratio,
		Progress:       Percent(100 * progress),
	}
}
