package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kaspa-community/projector"
	"github.com/kaspa-community/projector/renderer"
	"github.com/shopspring/decimal"
)

// exploreCmd holds the flags for the 'explore' subcommand.
type exploreCmd struct {
	inputFlags
	pos    float64
	target float64
}

func (*exploreCmd) Name() string     { return "explore" }
func (*exploreCmd) Synopsis() string { return "explore the price range on the 0-100 slider scale" }
func (*exploreCmd) Usage() string {
	return `kpp explore -holdings <coins> [-pos <0-100> | -target <price>]

  Maps a slider position to its price on the logarithmic scale, or a
  target price back to its position, and shows the nearest projection
  rows.
`
}

func (c *exploreCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.Float64Var(&c.pos, "pos", 50, "slider position between 0 and 100")
	f.Float64Var(&c.target, "target", 0, "target price in USD, overrides -pos")
}

func (c *exploreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, rates, _, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving inputs: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := in.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ex := projector.NewExplorer(in.Price, projector.DefaultCeiling)

	pos := c.pos
	if c.target > 0 {
		pos = ex.PositionOf(c.target)
	}
	price := ex.PriceAt(pos)

	p := projector.NewProjection(in, rates)
	nearest := nearestDisplayRow(p, rates, price)
	if nearest < 0 {
		fmt.Fprintln(os.Stderr, "Error: empty projection")
		return subcommands.ExitFailure
	}

	fmt.Printf("position %.1f -> %s\n\n", pos, projector.M(price, "USD").PreciseString())
	printMarkdown(renderer.WindowMarkdown(p, nearest, 2))
	return subcommands.ExitSuccess
}

// nearestDisplayRow finds the table row closest to a USD slider price.
// The table is keyed by display prices, so the price is converted into
// the projection's currency before the scan.
func nearestDisplayRow(p *projector.Projection, rates projector.ExchangeRateTable, priceUSD float64) int {
	rate := decimal.NewFromFloat(rates.Rate(p.Currency))
	return p.Nearest(decimal.NewFromFloat(priceUSD).Mul(rate))
}
