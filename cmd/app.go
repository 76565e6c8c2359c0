// Package cmd implements the CLI application to browse and edit a hledger
// journal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/google/subcommands"
	"github.com/tdvan/hledgerweb"
	"github.com/tdvan/hledgerweb/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&txCmd{}, "reports")
	c.Register(&showCmd{}, "reports")
	c.Register(&balCmd{}, "reports")
	c.Register(&isCmd{}, "reports")
	c.Register(&bsCmd{}, "reports")
	c.Register(&regCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")

	c.Register(&addCmd{}, "editing")
	c.Register(&editCmd{}, "editing")

	c.Register(&assistCmd{}, "assistant")
}

// Environment variables recognized by the application.
const (
	EnvJournalFile = "HLEDGER_FILE"
	EnvHledgerBin  = "HLW_BIN"
)

// as a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var journalFile = flag.String("f", os.Getenv(EnvJournalFile), "Path to the journal file (defaults to $HLEDGER_FILE)")
var hledgerBin = flag.String("hledger", os.Getenv(EnvHledgerBin), "hledger executable (defaults to $HLW_BIN, then PATH)")
var noDecimalCommodity = flag.String("no-decimal-commodity", hledgerweb.NoDecimalCommodity, "Commodity displayed as a grouped integer")
var Verbose = flag.Bool("v", false, "Log every hledger invocation")

var (
	svcOnce sync.Once
	svc     *hledgerweb.Service
)

// Svc returns the process-wide service built from the global flags.
func Svc() *hledgerweb.Service {
	svcOnce.Do(func() {
		hledgerweb.NoDecimalCommodity = *noDecimalCommodity
		svc = hledgerweb.NewService(hledgerweb.Config{
			File:    *journalFile,
			Bin:     *hledgerBin,
			Verbose: *Verbose,
		})
	})
	return svc
}

// rangeFlags holds the date filtering flags shared by the report commands.
// A month expands to its begin/end pair; explicit -b/-e win over -month.
type rangeFlags struct {
	month string
	begin string
	end   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.month, "month", "", "Limit to one month (2006-01, or \"now\")")
	f.StringVar(&r.begin, "b", "", "Begin date, inclusive (overrides -month)")
	f.StringVar(&r.end, "e", "", "End date, exclusive (overrides -month)")
}

func (r *rangeFlags) Resolve() (begin, end string, err error) {
	begin, end = r.begin, r.end
	if r.month == "" {
		return begin, end, nil
	}
	sel := r.month
	if sel == "now" {
		sel = ""
	}
	m, err := date.ParseMonth(sel)
	if err != nil {
		return "", "", err
	}
	if begin == "" {
		begin = m.Begin().String()
	}
	if end == "" {
		end = m.End().String()
	}
	return begin, end, nil
}

// fail prints an error and returns the failure exit status, so commands can
// `return fail(err)`.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// listFlag is a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return fmt.Sprint([]string(*l)) }
func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}
