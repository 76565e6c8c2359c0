package hledgerweb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Config carries the deployment settings for a Service.
type Config struct {
	// File is the top-level journal file (the `-f` argument).
	File string
	// Bin overrides the hledger executable. Empty means "hledger" on PATH.
	Bin string
	// Verbose logs every subprocess invocation.
	Verbose bool
}

// NotFoundError reports a transaction index absent from the freshly parsed
// list. Indexes are reassigned by hledger on every load, so a stale index
// after an edit lands here rather than on the wrong entry.
type NotFoundError struct {
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.Index)
}

// Service glues the runner, the parsers, the mutator and the cache into the
// interface consumed by a UI layer. It is the composition root: one Service
// per process, created at startup, explicitly owning all mutable state (the
// cache and the file locks).
//
// Reads may run concurrently; each is a fresh subprocess invocation or a
// cache hit. Writes serialize per journal file inside the Mutator.
type Service struct {
	Config  Config
	Runner  Runner
	Cache   *Cache
	Mutator *Mutator
}

// NewService creates a service running the real hledger executable.
func NewService(cfg Config) *Service {
	cache := NewCache()
	return &Service{
		Config:  cfg,
		Runner:  ExecRunner{Bin: cfg.Bin, Verbose: cfg.Verbose},
		Cache:   cache,
		Mutator: NewMutator(cache),
	}
}

// Transactions lists journal entries, newest last. The unfiltered call is
// served from cache when fresh; any query, begin or end filter bypasses the
// cache and always hits hledger.
func (s *Service) Transactions(ctx context.Context, query, begin, end string) ([]Transaction, error) {
	unfiltered := query == "" && begin == "" && end == ""
	if unfiltered {
		if txs, ok := s.Cache.Transactions(s.Config.File); ok {
			return txs, nil
		}
	}

	args := []string{"-f", s.Config.File, "print", "-O", "json"}
	if begin != "" {
		args = append(args, "-b", begin)
	}
	if end != "" {
		args = append(args, "-e", end)
	}
	if query != "" {
		args = append(args, query)
	}
	out, err := s.Runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	txs, err := ParseTransactions(out)
	if err != nil {
		return nil, err
	}
	if unfiltered {
		s.Cache.StoreTransactions(s.Config.File, txs)
	}
	return txs, nil
}

// Transaction finds one entry by its hledger-assigned index in the current
// load. A missing index is a NotFoundError, not a crash.
func (s *Service) Transaction(ctx context.Context, index int) (Transaction, error) {
	txs, err := s.Transactions(ctx, "", "", "")
	if err != nil {
		return Transaction{}, err
	}
	for _, tx := range txs {
		if tx.Index == index {
			return tx, nil
		}
	}
	return Transaction{}, &NotFoundError{Index: index}
}

// Add appends a new entry to the top-level journal file.
func (s *Service) Add(ctx context.Context, date, description string, postings []PostingInput) error {
	_ = ctx // the write is local file I/O, no subprocess involved
	return s.Mutator.Append(s.Config.File, date, description, postings)
}

// Update rewrites an existing entry in place, locating it by index in a
// fresh (or cached) load and splicing its source span.
func (s *Service) Update(ctx context.Context, index int, date, description string, tags []Tag, postings []PostingInput) error {
	tx, err := s.Transaction(ctx, index)
	if err != nil {
		return err
	}
	return s.Mutator.Replace(tx, date, description, tags, postings)
}

// Balances runs the tree-mode balance report.
func (s *Service) Balances(ctx context.Context, query string, depth int, begin, end string) ([]BalanceRow, error) {
	args := []string{"-f", s.Config.File, "bal", "-O", "json", "--tree"}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}
	if begin != "" {
		args = append(args, "-b", begin)
	}
	if end != "" {
		args = append(args, "-e", end)
	}
	if query != "" {
		args = append(args, query)
	}
	out, err := s.Runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseBalances(out)
}

// IncomeStatement runs the `is` compound report over [begin, end).
func (s *Service) IncomeStatement(ctx context.Context, depth int, begin, end string) (*CompoundReport, error) {
	return s.compound(ctx, "is", depth, begin, end)
}

// BalanceSheet runs the `bs` compound report as of end. A balance sheet has
// no begin date: it is a point-in-time statement.
func (s *Service) BalanceSheet(ctx context.Context, depth int, end string) (*CompoundReport, error) {
	return s.compound(ctx, "bs", depth, "", end)
}

func (s *Service) compound(ctx context.Context, subcommand string, depth int, begin, end string) (*CompoundReport, error) {
	args := []string{"-f", s.Config.File, subcommand, "-O", "json"}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}
	if begin != "" {
		args = append(args, "-b", begin)
	}
	if end != "" {
		args = append(args, "-e", end)
	}
	out, err := s.Runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseCompoundReport(out)
}

// Register lists the postings of one account with a running balance.
func (s *Service) Register(ctx context.Context, account, begin, end string) ([]RegisterRow, error) {
	args := []string{"-f", s.Config.File, "reg", account, "-O", "json"}
	if begin != "" {
		args = append(args, "-b", begin)
	}
	if end != "" {
		args = append(args, "-e", end)
	}
	out, err := s.Runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseRegister(out)
}

// Accounts lists all account names, cached for AccountsTTL.
func (s *Service) Accounts(ctx context.Context) ([]string, error) {
	if accounts, ok := s.Cache.Accounts(s.Config.File); ok {
		return accounts, nil
	}
	out, err := s.Runner.Run(ctx, "-f", s.Config.File, "accounts")
	if err != nil {
		return nil, err
	}
	var accounts []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			accounts = append(accounts, line)
		}
	}
	s.Cache.StoreAccounts(s.Config.File, accounts)
	return accounts, nil
}
