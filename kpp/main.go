package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kaspa-community/projector/cmd"
	"github.com/kaspa-community/projector/coingecko"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must cover the
// same commands cmd.Commands registers.
func completion() *complete.Command {
	inputFlags := map[string]complete.Predictor{
		"holdings": predict.Something,
		"price":    predict.Something,
		"supply":   predict.Something,
		"currency": predict.Set(coingecko.Currencies),
		"offline":  predict.Nothing,
	}
	withInput := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(inputFlags)+len(extra))
		for k, v := range inputFlags {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"project": {Flags: withInput(map[string]complete.Predictor{"window": predict.Something})},
			"explore": {Flags: withInput(map[string]complete.Predictor{"pos": predict.Something, "target": predict.Something})},
			"fetch":   {Flags: inputFlags},
			"export":  {Flags: withInput(map[string]complete.Predictor{"o": predict.Files("*.csv")})},
			"topic":   {Args: predict.Set{"readme", "projection", "explorer", "currencies", "*"}},
			"assist":  {Flags: inputFlags},
		},
	}
}

func main() {
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
