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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	inputFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the projection table as CSV" }
func (*exportCmd) Usage() string {
	return `kpp export -holdings <coins> [-o <file>]

  Writes the projection table as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "output file, stdout when empty")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, rates, _, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving inputs: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := in.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	p := projector.NewProjection(in, rates)
	if err := renderer.WriteCSV(w, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
