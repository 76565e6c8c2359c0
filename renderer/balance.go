package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdvan/hledgerweb"
)

// SortRowsByAmount orders balance rows by descending absolute magnitude,
// the "largest first" view. The input slice is not modified.
func SortRowsByAmount(rows []hledgerweb.BalanceRow) []hledgerweb.BalanceRow {
	sorted := make([]hledgerweb.BalanceRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AbsoluteTotal > sorted[j].AbsoluteTotal
	})
	return sorted
}

// BalancesMarkdown renders the account balance table.
func BalancesMarkdown(rows []hledgerweb.BalanceRow) string {
	var b strings.Builder
	b.WriteString("# Balances\n\n")
	if len(rows) == 0 {
		b.WriteString("No data.\n")
		return b.String()
	}
	fence(&b, func(w io.Writer) {
		writeRows(w, rows)
	})
	return b.String()
}

// CompoundMarkdown renders an income statement or balance sheet: one section
// per subreport with its total, then the grand total.
func CompoundMarkdown(report *hledgerweb.CompoundReport, grandLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", report.Title)

	for _, sub := range report.Subreports {
		fmt.Fprintf(&b, "\n## %s\n\n", sub.Title)
		ConditionalBlock(&b, func(w io.Writer) bool {
			if len(sub.Rows) == 0 {
				return false
			}
			fence(w, func(w io.Writer) {
				writeRows(w, sub.Rows)
				rule(w)
				writeAmountItems(w, 0, "Total", sub.TotalItems)
			})
			return true
		})
	}

	if len(report.GrandTotalItems) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", grandLabel)
		fence(&b, func(w io.Writer) {
			writeAmountItems(w, 0, grandLabel, report.GrandTotalItems)
		})
	}
	return b.String()
}

func writeRows(w io.Writer, rows []hledgerweb.BalanceRow) {
	for _, row := range rows {
		writeAmountItems(w, row.Depth, row.Name, row.AmountItems)
	}
}

// writeAmountItems prints one line per commodity so multi-commodity rows stay
// readable, repeating the name only on the first line.
func writeAmountItems(w io.Writer, depth int, name string, items []string) {
	if len(items) == 0 {
		tableLine(w, depth, name, "")
		return
	}
	for i, item := range items {
		if i == 0 {
			tableLine(w, depth, name, item)
		} else {
			tableLine(w, depth, "", item)
		}
	}
}
