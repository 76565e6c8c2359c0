package hledgerweb

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tag is one structured line of a transaction or posting comment, either
// "key:value" or a bare remark (empty key).
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SourcePos is a position in a journal file as reported by hledger. The file
// name matters: with `include` directives an entry may live in a different
// file than the top-level journal.
type SourcePos struct {
	Name   string `json:"sourceName"`
	Line   int    `json:"sourceLine"`
	Column int    `json:"sourceColumn"`
}

// BalanceAssertion is the `= amount` assertion attached to a posting.
type BalanceAssertion struct {
	Amount Amount `json:"baamount"`
}

// Posting is one account movement inside a transaction.
type Posting struct {
	Account   string            `json:"paccount"`
	Amounts   []Amount          `json:"pamount"`
	Comment   string            `json:"pcomment"`
	Assertion *BalanceAssertion `json:"pbalanceassertion"`

	// Derived at load time, never read back from JSON.
	Tags             []Tag  `json:"-"`
	AmountDisplay    string `json:"-"`
	AssertionDisplay string `json:"-"`
}

// Transaction is one dated journal entry. Index is assigned by hledger on
// every load and is not stable across edits; re-fetch after every write.
type Transaction struct {
	Index       int         `json:"tindex"`
	Date        string      `json:"tdate"`
	Date2       string      `json:"tdate2"`
	Description string      `json:"tdescription"`
	Comment     string      `json:"tcomment"`
	Postings    []Posting   `json:"tpostings"`
	SourcePos   []SourcePos `json:"tsourcepos"`

	Tags []Tag `json:"-"`
}

// Span returns the source span of the transaction: its first line and the
// line of the blank line following it (exclusive), in the file the entry was
// defined in.
func (t Transaction) Span() (start, end SourcePos, ok bool) {
	if len(t.SourcePos) != 2 {
		return SourcePos{}, SourcePos{}, false
	}
	return t.SourcePos[0], t.SourcePos[1], true
}

// MalformedResponseError reports hledger JSON that does not match the
// expected shape, usually a sign of tool-version drift. It keeps an excerpt
// of the offending payload; this is the single unstructured boundary per
// subprocess call, nothing downstream re-checks shapes.
type MalformedResponseError struct {
	Payload string
	cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected hledger output: %v (payload: %s)", e.cause, e.Payload)
}

func (e *MalformedResponseError) Unwrap() error { return e.cause }

const payloadExcerptLen = 200

func malformed(payload []byte, cause error) *MalformedResponseError {
	s := string(payload)
	if len(s) > payloadExcerptLen {
		s = s[:payloadExcerptLen] + "..."
	}
	return &MalformedResponseError{Payload: s, cause: cause}
}

// ParseCommentTags splits a raw hledger comment ("\nkey:value\nremark\n")
// into tags. Lines with a colon split on the first one, both sides trimmed;
// bare lines become value-only tags.
func ParseCommentTags(comment string) []Tag {
	var tags []Tag
	for _, line := range strings.Split(strings.TrimSpace(comment), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if key, value, found := strings.Cut(line, ":"); found {
			tags = append(tags, Tag{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
		} else {
			tags = append(tags, Tag{Value: line})
		}
	}
	return tags
}

// FormatCommentTags converts tags back into comment lines, the inverse of
// ParseCommentTags. Empty tags are dropped. A key-only tag keeps its trailing
// colon ("todo:"): without it the next parse would read the key back as a
// bare remark.
func FormatCommentTags(tags []Tag) []string {
	var lines []string
	for _, tag := range tags {
		key, value := strings.TrimSpace(tag.Key), strings.TrimSpace(tag.Value)
		switch {
		case key != "":
			lines = append(lines, key+":"+value)
		case value != "":
			lines = append(lines, value)
		}
	}
	return lines
}

// ParseTransactions decodes the output of `hledger print -O json` and
// derives the display fields: comment tags on transactions and postings,
// merged-and-formatted posting amounts, assertion display text.
func ParseTransactions(payload []byte) ([]Transaction, error) {
	var txs []Transaction
	if err := json.Unmarshal(payload, &txs); err != nil {
		return nil, malformed(payload, err)
	}
	for i := range txs {
		tx := &txs[i]
		tx.Tags = ParseCommentTags(tx.Comment)
		for j := range tx.Postings {
			p := &tx.Postings[j]
			p.Tags = ParseCommentTags(p.Comment)
			p.AmountDisplay = FormatAmounts(MergeAmounts(p.Amounts))
			if p.Assertion != nil {
				p.AssertionDisplay = FormatAmount(p.Assertion.Amount)
			}
		}
	}
	return txs, nil
}
