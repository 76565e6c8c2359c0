package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// isCmd holds the flags for the 'is' subcommand.
type isCmd struct {
	depth int
	dates rangeFlags
}

func (*isCmd) Name() string     { return "is" }
func (*isCmd) Synopsis() string { return "display the income statement" }
func (*isCmd) Usage() string {
	return `hlw is [-depth <n>] [-month <2006-01>] [-b <date>] [-e <date>]

  Displays revenues and expenses over the date range, with per-section totals
  and the net result. Without a range the whole journal is covered.
`
}

func (c *isCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.depth, "depth", 0, "Collapse accounts deeper than n, 0 for no limit")
	c.dates.SetFlags(f)
}

func (c *isCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	begin, end, err := c.dates.Resolve()
	if err != nil {
		return fail(err)
	}
	report, err := Svc().IncomeStatement(ctx, c.depth, begin, end)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CompoundMarkdown(report, "Net"))
	return subcommands.ExitSuccess
}
