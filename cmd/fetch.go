package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kaspa-community/projector"
	"github.com/kaspa-community/projector/renderer"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	inputFlags
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch live market data and display the portfolio facts" }
func (*fetchCmd) Usage() string {
	return `kpp fetch [-holdings <coins>] [-currency <code>]

  Fetches the current price, circulating supply and exchange rates, and
  displays the portfolio facts. Holdings may be zero: the valuation is
  then zero but the market figures still show.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, rates, btc, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving inputs: %v\n", err)
		return subcommands.ExitFailure
	}

	facts := projector.NewFacts(in, btc, rates)
	printMarkdown(renderer.FactsMarkdown(&facts))
	return subcommands.ExitSuccess
}
