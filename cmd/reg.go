package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// regCmd holds the flags for the 'reg' subcommand.
type regCmd struct {
	dates rangeFlags
}

func (*regCmd) Name() string     { return "reg" }
func (*regCmd) Synopsis() string { return "display the register of one account" }
func (*regCmd) Usage() string {
	return `hlw reg <account> [-month <2006-01>] [-b <date>] [-e <date>]

  Displays every posting of the account with its amount and the running
  balance.
`
}

func (c *regCmd) SetFlags(f *flag.FlagSet) {
	c.dates.SetFlags(f)
}

func (c *regCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one account argument"))
	}
	account := f.Arg(0)
	begin, end, err := c.dates.Resolve()
	if err != nil {
		return fail(err)
	}
	rows, err := Svc().Register(ctx, account, begin, end)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RegisterMarkdown(account, rows))
	return subcommands.ExitSuccess
}
