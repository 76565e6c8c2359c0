package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	index       int
	date        string
	description string
	tags        listFlag
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "rewrite an existing entry in place" }
func (*editCmd) Usage() string {
	return `hlw edit -i <index> [-d <date>] [-m <description>] [-t key:value]... [<account>=<amount> ...]

  Rewrites the entry in its source file, replacing its lines with the given
  fields. Omitted -d and -m keep the current values; posting arguments, when
  given, replace all postings; -t flags replace all comment tags. Indexes are
  the #N numbers printed by 'hlw tx' and change after every edit.

Usage Examples:
$ hlw edit -i 12 -m "Groceries at the market"
$ hlw edit -i 12 -t trip:hanoi expenses:food="139,400. vnd" assets:cash=
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Index of the entry to edit")
	f.StringVar(&c.date, "d", "", "New date, empty keeps the current one")
	f.StringVar(&c.description, "m", "", "New description, empty keeps the current one")
	f.Var(&c.tags, "t", "Comment tag key:value, repeatable, replaces existing tags")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := Svc()
	tx, err := svc.Transaction(ctx, c.index)
	if err != nil {
		return fail(err)
	}

	date, description := c.date, c.description
	if date == "" {
		date = tx.Date
	}
	if description == "" {
		description = tx.Description
	}

	tags := tx.Tags
	if len(c.tags) > 0 {
		tags = hledgerweb.ParseCommentTags(strings.Join(c.tags, "\n"))
	}

	var postings []hledgerweb.PostingInput
	if f.NArg() > 0 {
		postings, err = parsePostings(f.Args())
		if err != nil {
			return fail(err)
		}
	} else {
		for _, p := range tx.Postings {
			postings = append(postings, hledgerweb.PostingInput{
				Account:   p.Account,
				Amount:    p.AmountDisplay,
				Assertion: p.AssertionDisplay,
			})
		}
	}

	if err := svc.Update(ctx, c.index, date, description, tags, postings); err != nil {
		return fail(err)
	}
	fmt.Printf("Rewrote entry #%d\n", c.index)
	return subcommands.ExitSuccess
}
