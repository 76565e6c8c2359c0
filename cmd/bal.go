package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// balCmd holds the flags for the 'bal' subcommand.
type balCmd struct {
	query string
	depth int
	sort  string
	dates rangeFlags
}

func (*balCmd) Name() string     { return "bal" }
func (*balCmd) Synopsis() string { return "display account balances as a tree" }
func (*balCmd) Usage() string {
	return `hlw bal [-q <query>] [-depth <n>] [-sort amount] [-month <2006-01>] [-b <date>] [-e <date>]

  Displays the balance of every matching account, indented by depth, one line
  per commodity.
`
}

func (c *balCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "hledger account query")
	f.IntVar(&c.depth, "depth", 0, "Collapse accounts deeper than n, 0 for no limit")
	f.StringVar(&c.sort, "sort", "", "Row order: \"amount\" for largest first, default keeps account order")
	c.dates.SetFlags(f)
}

func (c *balCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	begin, end, err := c.dates.Resolve()
	if err != nil {
		return fail(err)
	}
	rows, err := Svc().Balances(ctx, c.query, c.depth, begin, end)
	if err != nil {
		return fail(err)
	}
	if c.sort == "amount" {
		rows = renderer.SortRowsByAmount(rows)
	}
	printMarkdown(renderer.BalancesMarkdown(rows))
	return subcommands.ExitSuccess
}
