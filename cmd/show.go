package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	index int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one journal entry in full detail" }
func (*showCmd) Usage() string {
	return `hlw show -i <index>

  Displays one journal entry with its tags and posting comments. Indexes are
  the #N numbers printed by 'hlw tx'.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Index of the entry to show")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := Svc().Transaction(ctx, c.index)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionMarkdown(tx))
	return subcommands.ExitSuccess
}
