package hledgerweb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.journal")
	m := NewMutator(nil)

	postings := []PostingInput{
		{Account: "expenses:food", Amount: "139,400 vnd"},
		{Account: "assets:cash", Assertion: "4,860,600. vnd"},
	}
	if err := m.Append(file, "2025-08-03", "Pho lunch", postings); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"",
		"2025-08-03 Pho lunch",
		"    expenses:food    139,400. vnd",
		"    assets:cash = 4,860,600. vnd",
		"",
	}, "\n")
	if string(content) != want {
		t.Errorf("journal = %q, want %q", content, want)
	}
}

func TestAppendAccumulates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.journal")
	m := NewMutator(nil)

	if err := m.Append(file, "2025-08-01", "First", []PostingInput{{Account: "a", Amount: "1 usd"}, {Account: "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.Append(file, "2025-08-02", "Second", []PostingInput{{Account: "a", Amount: "2 usd"}, {Account: "b"}}); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "    b\n\n2025-08-02 Second") {
		t.Errorf("entries are not blank-line delimited: %q", content)
	}
}

func TestAppendSkipsInvalidEntries(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.journal")
	m := NewMutator(nil)

	tests := []struct {
		name        string
		date        string
		description string
		postings    []PostingInput
	}{
		{"no date", "", "Lunch", []PostingInput{{Account: "a", Amount: "1 usd"}}},
		{"no description", "2025-08-03", "", []PostingInput{{Account: "a", Amount: "1 usd"}}},
		{"no postings", "2025-08-03", "Lunch", nil},
		{"blank accounts only", "2025-08-03", "Lunch", []PostingInput{{Account: "  "}}},
		{"two inferred amounts", "2025-08-03", "Lunch", []PostingInput{{Account: "a"}, {Account: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Append(file, tt.date, tt.description, tt.postings); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(file); !os.IsNotExist(err) {
				t.Error("invalid entry must not touch the journal")
			}
		})
	}
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.journal")
	original := strings.Join([]string{
		"2025-08-01 Opening balance",              // line 1
		"    assets:bank:checking    5,000,000. vnd", // 2
		"    equity:opening",                      // 3
		"",                                        // 4
		"2025-08-03 Pho lunch",                    // 5
		"    expenses:food    139,400. vnd",       // 6
		"    assets:cash",                         // 7
		"",                                        // 8
	}, "\n")
	if err := os.WriteFile(file, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	tx := Transaction{
		Index: 2,
		SourcePos: []SourcePos{
			{Name: file, Line: 5},
			{Name: file, Line: 8},
		},
	}
	m := NewMutator(nil)
	err := m.Replace(tx, "2025-08-03", "Bun cha lunch",
		[]Tag{{Key: "trip", Value: "hanoi"}},
		[]PostingInput{
			{Account: "expenses:food", Amount: "120,000 vnd"},
			{Account: "assets:cash"},
		})
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"2025-08-01 Opening balance",
		"    assets:bank:checking    5,000,000. vnd",
		"    equity:opening",
		"",
		"2025-08-03 Bun cha lunch",
		"    ; trip:hanoi",
		"    expenses:food    120,000. vnd",
		"    assets:cash",
		"",
	}, "\n")
	if string(content) != want {
		t.Errorf("journal = %q, want %q", content, want)
	}
}

func TestReplaceWithoutSpan(t *testing.T) {
	m := NewMutator(nil)
	err := m.Replace(Transaction{Index: 7}, "2025-08-03", "Lunch",
		nil, []PostingInput{{Account: "a", Amount: "1 usd"}})
	if err == nil {
		t.Fatal("expected an error for a transaction without a span")
	}
}

func TestReplaceSpanOutOfRange(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.journal")
	if err := os.WriteFile(file, []byte("2025-08-01 Short\n    a  1 usd\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tx := Transaction{
		SourcePos: []SourcePos{{Name: file, Line: 40}, {Name: file, Line: 44}},
	}
	m := NewMutator(nil)
	err := m.Replace(tx, "2025-08-03", "Lunch", nil, []PostingInput{{Account: "a", Amount: "1 usd"}})
	if err == nil {
		t.Fatal("expected an error for a stale span")
	}
}

func TestReplaceInvalidatesCache(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.journal")
	if err := os.WriteFile(file, []byte("2025-08-01 Lunch\n    a  1 usd\n    b\n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cache, _ := newTestCache()
	cache.StoreTransactions(file, []Transaction{{Index: 1}})

	tx := Transaction{SourcePos: []SourcePos{{Name: file, Line: 1}, {Name: file, Line: 4}}}
	m := NewMutator(cache)
	err := m.Replace(tx, "2025-08-01", "Dinner", nil, []PostingInput{{Account: "a", Amount: "2 usd"}, {Account: "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Transactions(file); ok {
		t.Error("a successful replace must invalidate the cache")
	}
}
