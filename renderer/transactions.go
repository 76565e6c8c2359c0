package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdvan/hledgerweb"
)

// TransactionsMarkdown renders a transaction list grouped by date, newest
// group first when the input is newest first.
func TransactionsMarkdown(txs []hledgerweb.Transaction) string {
	return TransactionsRunningMarkdown("", txs, nil)
}

// TransactionsRunningMarkdown renders the transaction list with the running
// balance of one account (as computed by RunningBalances) appended to each
// entry that touched it.
func TransactionsRunningMarkdown(account string, txs []hledgerweb.Transaction, running map[int]string) string {
	var b strings.Builder
	if len(txs) == 0 {
		b.WriteString("No transactions found.\n")
		return b.String()
	}

	currentDate := ""
	for _, tx := range txs {
		if tx.Date != currentDate {
			currentDate = tx.Date
			fmt.Fprintf(&b, "\n## %s\n\n", tx.Date)
		}
		writeTransaction(&b, tx, account, running[tx.Index])
	}
	return b.String()
}

// TransactionMarkdown renders one transaction in full detail, including its
// tags and posting tags.
func TransactionMarkdown(tx hledgerweb.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction #%d\n\n", tx.Index)
	fmt.Fprintf(&b, "- Date: %s\n", tx.Date)
	fmt.Fprintf(&b, "- Description: %s\n", tx.Description)
	for _, tag := range tx.Tags {
		if tag.Key != "" {
			fmt.Fprintf(&b, "- %s: %s\n", tag.Key, tag.Value)
		} else {
			fmt.Fprintf(&b, "- %s\n", tag.Value)
		}
	}
	b.WriteString("\n")
	fence(&b, func(w io.Writer) {
		for _, p := range tx.Postings {
			tableLine(w, 1, p.Account, postingAmount(p))
			for _, tag := range p.Tags {
				tableLine(w, 2, "; "+tag.Key+": "+tag.Value, "")
			}
		}
	})
	return b.String()
}

func writeTransaction(b *strings.Builder, tx hledgerweb.Transaction, account, balance string) {
	fmt.Fprintf(b, "**%s** (#%d)\n\n", tx.Description, tx.Index)
	fence(b, func(w io.Writer) {
		for _, p := range tx.Postings {
			tableLine(w, 1, p.Account, postingAmount(p))
		}
		if balance != "" {
			rule(w)
			tableLine(w, 1, account, balance)
		}
	})
	b.WriteString("\n")
}

// postingAmount picks the display text for a posting: the balance assertion
// when present, the merged amount otherwise.
func postingAmount(p hledgerweb.Posting) string {
	if p.AssertionDisplay != "" {
		return "= " + p.AssertionDisplay
	}
	return p.AmountDisplay
}
