package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// bsCmd holds the flags for the 'bs' subcommand.
type bsCmd struct {
	depth int
	end   string
}

func (*bsCmd) Name() string     { return "bs" }
func (*bsCmd) Synopsis() string { return "display the balance sheet" }
func (*bsCmd) Usage() string {
	return `hlw bs [-depth <n>] [-e <date>]

  Displays assets and liabilities as of the end date (exclusive), with the
  net worth. A balance sheet is a point-in-time statement and takes no begin
  date.
`
}

func (c *bsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.depth, "depth", 0, "Collapse accounts deeper than n, 0 for no limit")
	f.StringVar(&c.end, "e", "", "Report as of this date, exclusive; empty for today")
}

func (c *bsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := Svc().BalanceSheet(ctx, c.depth, c.end)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CompoundMarkdown(report, "Net worth"))
	return subcommands.ExitSuccess
}
