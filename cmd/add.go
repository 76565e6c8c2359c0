package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb"
	"github.com/tdvan/hledgerweb/date"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new entry to the journal" }
func (*addCmd) Usage() string {
	return `hlw add [-d <date>] <description> <account>=<amount> ...

  Appends a new entry to the journal file. Each posting argument is
  account=amount, with an optional =assertion third part. Leave the amount
  empty (account=) on at most one posting to let hledger infer it.

Usage Examples:
$ hlw add "Lunch" expenses:food="45,000. vnd" assets:cash=
$ hlw add -d 2025-08-01 "Opening" assets:bank:checking="1,000,000. vnd" equity:opening=
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the entry")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		return fail(fmt.Errorf("expected a description and at least one posting, got %d arguments", f.NArg()))
	}
	description := f.Arg(0)
	postings, err := parsePostings(f.Args()[1:])
	if err != nil {
		return fail(err)
	}
	if err := Svc().Add(ctx, c.date, description, postings); err != nil {
		return fail(err)
	}
	fmt.Printf("Appended %q to %s\n", description, *journalFile)
	return subcommands.ExitSuccess
}

// parsePostings converts account=amount[=assertion] arguments into posting
// inputs. A bare account means an inferred amount.
func parsePostings(args []string) ([]hledgerweb.PostingInput, error) {
	postings := make([]hledgerweb.PostingInput, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 3)
		p := hledgerweb.PostingInput{Account: strings.TrimSpace(parts[0])}
		if p.Account == "" {
			return nil, fmt.Errorf("posting %q has no account", arg)
		}
		if len(parts) > 1 {
			p.Amount = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			p.Assertion = strings.TrimSpace(parts[2])
		}
		postings = append(postings, p)
	}
	return postings, nil
}
