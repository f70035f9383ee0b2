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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	inputFlags
	window int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the portfolio projection table" }
func (*projectCmd) Usage() string {
	return `kpp project -holdings <coins> [-price <usd>] [-supply <billions>] [-currency <code>] [-window <rows>]

  Displays the projection table: for each hypothetical price, the
  portfolio value and the implied market capitalization.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.IntVar(&c.window, "window", 0, "rows to keep around the current price, 0 shows all")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, rates, btc, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving inputs: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := in.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	facts := projector.NewFacts(in, btc, rates)
	printMarkdown(renderer.FactsMarkdown(&facts))

	p := projector.NewProjection(in, rates)
	if c.window > 0 {
		printMarkdown(renderer.WindowMarkdown(p, p.Anchor(), c.window))
	} else {
		printMarkdown(renderer.ProjectionMarkdown(p))
	}
	return subcommands.ExitSuccess
}
