package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all account names" }
func (*accountsCmd) Usage() string {
	return `hlw accounts

  Lists every account name used in the journal, one per line.
`
}

func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := Svc().Accounts(ctx)
	if err != nil {
		return fail(err)
	}
	for _, a := range accounts {
		fmt.Println(a)
	}
	return subcommands.ExitSuccess
}
