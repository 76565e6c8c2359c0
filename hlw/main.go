// Command hlw browses and edits a hledger journal from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tdvan/hledgerweb/cmd"
)

// completion describes the CLI for shell completion. It must stay in sync
// with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"f":                    predict.Files("*"),
		"hledger":              predict.Files("*"),
		"no-decimal-commodity": predict.Nothing,
		"v":                    predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"tx":       {Flags: map[string]complete.Predictor{"q": predict.Nothing, "r": predict.Nothing, "month": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing}},
		"show":     {Flags: map[string]complete.Predictor{"i": predict.Nothing}},
		"bal":      {Flags: map[string]complete.Predictor{"q": predict.Nothing, "depth": predict.Nothing, "sort": predict.Set{"amount"}, "month": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing}},
		"is":       {Flags: map[string]complete.Predictor{"depth": predict.Nothing, "month": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing}},
		"bs":       {Flags: map[string]complete.Predictor{"depth": predict.Nothing, "e": predict.Nothing}},
		"reg":      {Flags: map[string]complete.Predictor{"month": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing}},
		"accounts": {},
		"add":      {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
		"edit":     {Flags: map[string]complete.Predictor{"i": predict.Nothing, "d": predict.Nothing, "m": predict.Nothing, "t": predict.Nothing}},
		"assist":   {},
		"help":     {},
	},
}

func main() {
	completion.Complete("hlw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
