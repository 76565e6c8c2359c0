package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	query   string
	running string
	dates   rangeFlags
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list journal entries" }
func (*txCmd) Usage() string {
	return `hlw tx [-q <query>] [-r <account>] [-month <2006-01>] [-b <date>] [-e <date>]

  Lists journal entries grouped by date, with their postings and amounts.
  With -r, entries are filtered to the account and each one shows the
  account's running balance after it.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "hledger query to filter entries")
	f.StringVar(&c.running, "r", "", "Account whose running balance to show next to each entry")
	c.dates.SetFlags(f)
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	begin, end, err := c.dates.Resolve()
	if err != nil {
		return fail(err)
	}
	query := c.query
	if query == "" && c.running != "" {
		query = c.running
	}
	txs, err := Svc().Transactions(ctx, query, begin, end)
	if err != nil {
		return fail(err)
	}
	if c.running == "" {
		printMarkdown(renderer.TransactionsMarkdown(txs))
		return subcommands.ExitSuccess
	}
	rows, err := Svc().Register(ctx, c.running, begin, end)
	if err != nil {
		return fail(err)
	}
	running := renderer.RunningBalances(txs, rows)
	printMarkdown(renderer.TransactionsRunningMarkdown(c.running, txs, running))
	return subcommands.ExitSuccess
}
