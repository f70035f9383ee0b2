package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kaspa-community/projector"
	"github.com/kaspa-community/projector/agent"
	"github.com/kaspa-community/projector/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	inputFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `kpp assist [-holdings <coins>] [question...]

  Starts an interactive session with an AI analyst primed with the
  current projection and portfolio facts.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	in, rates, btc, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving inputs: %v\n", err)
		return subcommands.ExitFailure
	}

	facts := projector.NewFacts(in, btc, rates)
	p := projector.NewProjection(in, rates)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(renderer.FactsMarkdown(&facts), renderer.ProjectionMarkdown(p))
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
