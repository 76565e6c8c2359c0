package hledgerweb

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// PostingInput is one posting line as submitted for a write: a raw amount
// expression rather than a parsed quantity, because hledger itself will parse
// it on the next load. An empty Amount lets hledger infer the value.
type PostingInput struct {
	Account   string
	Amount    string
	Assertion string // optional `= balance` assertion text
}

// Mutator performs the in-place edits of the journal text. Writes never go
// through hledger; they splice the file directly, guided by the source
// positions hledger reported on the last read.
//
// All read-modify-write sequences on one file share an in-process mutex,
// covering append and replace alike. There is no cross-process locking, and
// no conflict detection: if the file changed underneath a replace, the last
// writer wins.
type Mutator struct {
	cache *Cache // invalidated on every successful write; may be nil

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMutator creates a mutator that invalidates cache after each write.
func NewMutator(cache *Cache) *Mutator {
	return &Mutator{cache: cache, locks: make(map[string]*sync.Mutex)}
}

// fileLock returns the mutex serializing writes to path.
func (m *Mutator) fileLock(path string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[path]
	if !ok {
		l = &sync.Mutex{}
		m.locks[path] = l
	}
	return l
}

func (m *Mutator) invalidate() {
	if m.cache != nil {
		m.cache.Invalidate()
	}
}

// validEntry reports whether the submitted fields make a writable entry:
// a date, a description, at least one posting with an account, and at most
// one posting leaving its amount to be inferred. Anything less makes the
// write a silent no-op; rejecting loudly is the caller's job, this is the
// last line of defense.
func validEntry(date, description string, postings []PostingInput) bool {
	if date == "" || description == "" {
		return false
	}
	accounts, inferred := 0, 0
	for _, p := range postings {
		if strings.TrimSpace(p.Account) == "" {
			continue
		}
		accounts++
		if strings.TrimSpace(p.Amount) == "" {
			inferred++
		}
	}
	return accounts > 0 && inferred <= 1
}

// postingLine renders one indented posting line. hledger wants two or more
// spaces between account and amount.
func postingLine(p PostingInput) string {
	line := "    " + strings.TrimSpace(p.Account)
	if amount := NormalizeAmountExpr(p.Amount); amount != "" {
		line += "    " + amount
	}
	if assertion := strings.TrimSpace(p.Assertion); assertion != "" {
		line += " = " + assertion
	}
	return line
}

// Append writes a new entry as a trailing blank-line-delimited block of the
// journal file. Missing required fields skip the write entirely.
func (m *Mutator) Append(file, date, description string, postings []PostingInput) error {
	if !validEntry(date, description, postings) {
		return nil
	}

	lines := []string{"", date + " " + description}
	for _, p := range postings {
		if strings.TrimSpace(p.Account) == "" {
			continue
		}
		lines = append(lines, postingLine(p))
	}
	lines = append(lines, "")

	lock := m.fileLock(file)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening journal %q: %w", file, err)
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("appending to journal %q: %w", file, err)
	}

	m.invalidate()
	return nil
}

// Replace re-renders a transaction and splices it over its source span.
//
// The span names the file the entry was defined in (which, with `include`
// directives, may not be the top-level journal) and the line range
// [startLine, endLine), 1-based with the end exclusive: endLine is the blank
// line following the entry, which is preserved. The rewrite reads the whole
// file, swaps the line slice and writes everything back; it is not a
// byte-offset patch.
func (m *Mutator) Replace(tx Transaction, date, description string, tags []Tag, postings []PostingInput) error {
	if !validEntry(date, description, postings) {
		return nil
	}
	start, end, ok := tx.Span()
	if !ok {
		return fmt.Errorf("transaction %d carries no source span", tx.Index)
	}

	block := []string{date + " " + description}
	for _, line := range FormatCommentTags(tags) {
		block = append(block, "    ; "+line)
	}
	for _, p := range postings {
		if strings.TrimSpace(p.Account) == "" {
			continue
		}
		block = append(block, postingLine(p))
	}

	lock := m.fileLock(start.Name)
	lock.Lock()
	defer lock.Unlock()

	content, err := os.ReadFile(start.Name)
	if err != nil {
		return fmt.Errorf("reading journal %q: %w", start.Name, err)
	}
	lines := strings.Split(string(content), "\n")
	if start.Line < 1 || end.Line <= start.Line || end.Line > len(lines)+1 {
		return fmt.Errorf("source span [%d,%d) out of range for %q", start.Line, end.Line, start.Name)
	}

	spliced := make([]string, 0, len(lines)+len(block))
	spliced = append(spliced, lines[:start.Line-1]...)
	spliced = append(spliced, block...)
	spliced = append(spliced, lines[end.Line-1:]...)

	if err := os.WriteFile(start.Name, []byte(strings.Join(spliced, "\n")), 0644); err != nil {
		return fmt.Errorf("writing journal %q: %w", start.Name, err)
	}

	m.invalidate()
	return nil
}
