// Package coingecko fetches the spot data and exchange rates one
// projection cycle needs from the CoinGecko API. The engine itself
// never fetches: callers run these off the interaction path and hand
// the results to projector as plain values.
package coingecko

import (
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/kaspa-community/projector"
)

// baseURL is a variable so tests can point the fetchers at a local
// server.
var baseURL = "https://api.coingecko.com/api/v3"

// Currencies are the display currencies the application quotes by
// default.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "AUD"}

// Spot holds the market data a projection cycle starts from, all USD.
type Spot struct {
	Price             float64 // kaspa unit price
	CirculatingSupply float64 // coins, not billions
	BTCMarketCap      float64 // for the $1M comparison
}

// FetchSpot returns the current kaspa price, circulating supply and the
// Bitcoin market cap.
func FetchSpot() (Spot, error) {
	// https://api.coingecko.com/api/v3/simple/price?ids=kaspa,bitcoin&vs_currencies=usd&include_market_cap=true
	// {
	//   "kaspa": { "usd": 0.2711 },
	//   "bitcoin": { "usd": 97000, "usd_market_cap": 1.9e12 }
	// }
	addr := baseURL + "/simple/price?ids=kaspa,bitcoin&vs_currencies=usd&include_market_cap=true"
	var quotes any
	if err := jwget(newDailyCachingClient(), addr, &quotes); err != nil {
		return Spot{}, err
	}
	price, err := jsonFloat(quotes, "$.kaspa.usd")
	if err != nil {
		return Spot{}, err
	}
	btc, err := jsonFloat(quotes, "$.bitcoin.usd_market_cap")
	if err != nil {
		return Spot{}, err
	}

	// The supply only lives on the full coin endpoint.
	// https://api.coingecko.com/api/v3/coins/kaspa
	addr = baseURL + "/coins/kaspa?localization=false&tickers=false&market_data=true&community_data=false&developer_data=false"
	var coin any
	if err := jwget(newDailyCachingClient(), addr, &coin); err != nil {
		return Spot{}, err
	}
	supply, err := jsonFloat(coin, "$.market_data.circulating_supply")
	if err != nil {
		return Spot{}, err
	}

	return Spot{Price: price, CirculatingSupply: supply, BTCMarketCap: btc}, nil
}

// FetchRates derives an exchange-rate snapshot from kaspa quotes in the
// given currencies: rate(c) = quote(c) / quote(USD). One upstream
// serves both the spot data and the rates; rate sourcing precision is
// not this application's business.
func FetchRates(currencies ...string) (projector.ExchangeRateTable, error) {
	if len(currencies) == 0 {
		currencies = Currencies
	}

	vs := make([]string, 0, len(currencies)+1)
	vs = append(vs, "usd")
	for _, c := range currencies {
		if c := strings.ToLower(c); c != "usd" {
			vs = append(vs, c)
		}
	}

	addr := fmt.Sprintf("%s/simple/price?ids=kaspa&vs_currencies=%s", baseURL, strings.Join(vs, ","))
	content := make(map[string]map[string]float64)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return projector.ExchangeRateTable{}, err
	}

	quotes := content["kaspa"]
	base := quotes["usd"]
	if base <= 0 {
		return projector.ExchangeRateTable{}, fmt.Errorf("no usable USD quote in response: %v", quotes)
	}

	rates := map[string]float64{"USD": 1.0}
	for code, quote := range quotes {
		if quote > 0 {
			rates[strings.ToUpper(code)] = quote / base
		}
	}
	return projector.NewExchangeRateTable(rates, nil), nil
}

// jsonFloat extracts a single number from a decoded JSON document with
// a JSONPath query.
func jsonFloat(doc any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// one answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}
