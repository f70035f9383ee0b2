// Package cmd implements the CLI application to project a kaspa portfolio.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/subcommands"
	"github.com/kaspa-community/projector"
	"github.com/kaspa-community/projector/coingecko"
)

// Commands lists every subcommand. A main package registers them all
// and executes the user-selected one.
var Commands = []subcommands.Command{
	&projectCmd{},
	&exploreCmd{},
	&fetchCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}

// inputFlags are the flags shared by every command that computes a
// projection. A zero price or supply means "fetch it".
type inputFlags struct {
	holdings float64
	price    float64
	supply   float64
	currency string
	offline  bool
}

func (c *inputFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.holdings, "holdings", 0, "coins held")
	f.Float64Var(&c.price, "price", 0, "current unit price in USD, fetched when omitted")
	f.Float64Var(&c.supply, "supply", 0, "circulating supply in billions of coins, fetched when omitted")
	f.StringVar(&c.currency, "currency", "USD", "display currency code")
	f.BoolVar(&c.offline, "offline", false, "never fetch; fail when a value is missing")
}

// resolve fills the missing inputs from CoinGecko and returns the
// input, the exchange rates and the Bitcoin market cap in USD (zero
// when nothing was fetched).
func (c *inputFlags) resolve() (projector.Input, projector.ExchangeRateTable, float64, error) {
	in := projector.Input{
		Holdings:       c.holdings,
		Price:          c.price,
		SupplyBillions: c.supply,
		Currency:       c.currency,
	}

	var btc float64
	if c.price <= 0 || c.supply <= 0 {
		if c.offline {
			return in, projector.ExchangeRateTable{}, 0, fmt.Errorf("-offline requires both -price and -supply")
		}
		spot, err := coingecko.FetchSpot()
		if err != nil {
			return in, projector.ExchangeRateTable{}, 0, fmt.Errorf("fetching spot data: %w", err)
		}
		if c.price <= 0 {
			in.Price = spot.Price
		}
		if c.supply <= 0 {
			in.SupplyBillions = spot.CirculatingSupply / 1e9
		}
		btc = spot.BTCMarketCap
	}

	rates := projector.DefaultRates()
	if !c.offline && !strings.EqualFold(c.currency, "USD") {
		fetched, err := coingecko.FetchRates()
		if err != nil {
			log.Printf("using builtin exchange rates: %v", err)
		} else {
			rates = fetched
		}
	}
	return in, rates, btc, nil
}
