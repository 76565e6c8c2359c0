package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdvan/hledgerweb"
)

// RegisterMarkdown renders the register of one account: each posting with
// its amount and the running balance.
func RegisterMarkdown(account string, rows []hledgerweb.RegisterRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Register: %s\n\n", account)
	if len(rows) == 0 {
		fmt.Fprintf(&b, "No entries for %s.\n", account)
		return b.String()
	}
	fence(&b, func(w io.Writer) {
		for _, row := range rows {
			desc := row.Description
			// Truncate on runes, not bytes, so multi-byte descriptions stay
			// valid UTF-8.
			if r := []rune(desc); len(r) > 26 {
				desc = string(r[:25]) + "…"
			}
			fmt.Fprintf(w, "%s  %-26s  %*s  %*s\n",
				row.Date, desc, amountWidth, row.AmountDisplay, amountWidth, row.RunningDisplay)
		}
	})
	return b.String()
}

// RunningBalances pairs register rows with the transactions that produced
// them, keyed by transaction index. Register rows carry no index, so the
// pairing matches rows to transactions by date and description in order and
// keeps the last running balance of each group.
func RunningBalances(txs []hledgerweb.Transaction, rows []hledgerweb.RegisterRow) map[int]string {
	running := make(map[int]string)
	ri := 0
	for _, tx := range txs {
		last := ""
		for ri < len(rows) && rows[ri].Date == tx.Date && rows[ri].Description == tx.Description {
			last = rows[ri].RunningDisplay
			ri++
		}
		if last != "" {
			running[tx.Index] = last
		}
	}
	return running
}
