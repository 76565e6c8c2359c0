package hledgerweb

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// BalanceRow is one account line of a balance-style report. Depth controls
// indentation; for the plain balance report it comes straight from hledger's
// tree computation, for compound reports it is re-derived from the account
// name so both views indent consistently.
type BalanceRow struct {
	Name           string
	Depth          int
	AmountsDisplay string   // all commodities, comma separated
	AmountItems    []string // one formatted string per commodity
	AbsoluteTotal  int64    // crude sort key, see AbsoluteMagnitude
}

// SubReport is one titled section of a compound report.
type SubReport struct {
	Title        string
	Rows         []BalanceRow
	Increases    bool // true when an increase is "normal" for this section
	TotalDisplay string
	TotalItems   []string
}

// CompoundReport is a multi-section report such as the income statement or
// the balance sheet, with per-section and grand totals.
type CompoundReport struct {
	Title             string
	Subreports        []SubReport
	GrandTotalDisplay string
	GrandTotalItems   []string
}

// RegisterRow is one posting line of `hledger reg` with its running balance.
type RegisterRow struct {
	Date           string
	Date2          string
	Description    string
	Account        string
	AmountDisplay  string
	RunningDisplay string
}

// ParseBalances decodes `hledger bal --tree -O json`: a 2-tuple of account
// rows and totals. Each row is a 4-tuple (name, fullName, depth, amounts);
// fullName is present in the payload but unused downstream.
func ParseBalances(payload []byte) ([]BalanceRow, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, malformed(payload, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var tuples [][]json.RawMessage
	if err := json.Unmarshal(raw[0], &tuples); err != nil {
		return nil, malformed(payload, err)
	}

	rows := make([]BalanceRow, 0, len(tuples))
	for _, tuple := range tuples {
		if len(tuple) < 4 {
			return nil, malformed(payload, fmt.Errorf("balance row has %d fields, want 4", len(tuple)))
		}
		var name string
		var depth int
		var amounts []Amount
		if err := json.Unmarshal(tuple[0], &name); err != nil {
			return nil, malformed(payload, err)
		}
		if err := json.Unmarshal(tuple[2], &depth); err != nil {
			return nil, malformed(payload, err)
		}
		if err := json.Unmarshal(tuple[3], &amounts); err != nil {
			return nil, malformed(payload, err)
		}
		rows = append(rows, balanceRow(name, depth, amounts))
	}
	return rows, nil
}

func balanceRow(name string, depth int, amounts []Amount) BalanceRow {
	merged := MergeAmounts(amounts)
	items := make([]string, 0, len(merged))
	for _, a := range merged {
		items = append(items, FormatAmount(a))
	}
	return BalanceRow{
		Name:           name,
		Depth:          depth,
		AmountsDisplay: strings.Join(items, ", "),
		AmountItems:    items,
		AbsoluteTotal:  AbsoluteMagnitude(merged),
	}
}

// AccountDepth counts the hierarchy separators in an account name:
// "assets:bank:checking" has depth 2.
func AccountDepth(name string) int {
	return strings.Count(name, ":")
}

// ParseCompoundReport decodes `hledger is -O json` or `hledger bs -O json`.
//
// The payload is loosely shaped — subreports are heterogeneous tuples and row
// names occasionally come back as nested lists instead of strings — so the
// navigation goes through jsonpath over a generic decode rather than rigid
// structs. A row name of unexpected shape is logged and replaced by an empty
// name; everything else mismatching fails the whole parse.
func ParseCompoundReport(payload []byte) (*CompoundReport, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, malformed(payload, err)
	}

	report := &CompoundReport{}
	if v, err := jsonpath.Get("$.cbrTitle", doc); err == nil {
		report.Title, _ = v.(string)
	}

	subsVal, err := jsonpath.Get("$.cbrSubreports", doc)
	if err != nil {
		return nil, malformed(payload, fmt.Errorf("missing cbrSubreports: %w", err))
	}
	subs, ok := subsVal.([]any)
	if !ok {
		return nil, malformed(payload, fmt.Errorf("cbrSubreports is %T, want list", subsVal))
	}

	for _, s := range subs {
		tuple, ok := s.([]any)
		if !ok || len(tuple) < 2 {
			return nil, malformed(payload, fmt.Errorf("subreport is not a (title, table, flag) tuple"))
		}
		sub := SubReport{}
		sub.Title, _ = tuple[0].(string)
		if len(tuple) > 2 {
			sub.Increases, _ = tuple[2].(bool)
		}
		table, ok := tuple[1].(map[string]any)
		if !ok {
			return nil, malformed(payload, fmt.Errorf("subreport table is %T, want object", tuple[1]))
		}

		rowsVal, _ := jsonpath.Get("$.prRows", table)
		rowList, _ := rowsVal.([]any)
		for _, rv := range rowList {
			row, err := compoundRow(rv)
			if err != nil {
				return nil, malformed(payload, err)
			}
			sub.Rows = append(sub.Rows, row)
		}

		if totalsVal, err := jsonpath.Get("$.prTotals", table); err == nil {
			sub.TotalDisplay, sub.TotalItems, err = rowAmounts(totalsVal)
			if err != nil {
				return nil, malformed(payload, err)
			}
		}
		report.Subreports = append(report.Subreports, sub)
	}

	if grandVal, err := jsonpath.Get("$.cbrTotals", doc); err == nil {
		report.GrandTotalDisplay, report.GrandTotalItems, err = rowAmounts(grandVal)
		if err != nil {
			return nil, malformed(payload, err)
		}
	}
	return report, nil
}

// compoundRow converts one prRows entry. Depth is re-derived from the name
// (not taken from the payload) so compound reports indent like the balance
// view.
func compoundRow(rv any) (BalanceRow, error) {
	name := rowName(rv)
	display, items, err := rowAmounts(rv)
	if err != nil {
		return BalanceRow{}, err
	}
	amounts, err := firstAmountSet(rv)
	if err != nil {
		return BalanceRow{}, err
	}
	return BalanceRow{
		Name:           name,
		Depth:          AccountDepth(name),
		AmountsDisplay: display,
		AmountItems:    items,
		AbsoluteTotal:  AbsoluteMagnitude(MergeAmounts(amounts)),
	}, nil
}

// rowName extracts prrName, tolerating the nested-list encoding some hledger
// versions emit instead of a plain string. The fallback is an empty name, not
// a failure.
func rowName(rv any) string {
	v, err := jsonpath.Get("$.prrName", rv)
	if err != nil {
		return ""
	}
	name, ok := v.(string)
	if !ok {
		log.Printf("report row name is %T, not a string; rendering it empty", v)
		return ""
	}
	return name
}

// firstAmountSet returns the first of the possibly multiple amount sets a row
// carries. Multi-set reporting (running totals per row) is not used here.
func firstAmountSet(rv any) ([]Amount, error) {
	v, err := jsonpath.Get("$.prrAmounts", rv)
	if err != nil {
		return nil, nil
	}
	sets, ok := v.([]any)
	if !ok || len(sets) == 0 {
		return nil, nil
	}
	return decodeAmounts(sets[0])
}

func rowAmounts(rv any) (display string, items []string, err error) {
	amounts, err := firstAmountSet(rv)
	if err != nil {
		return "", nil, err
	}
	merged := MergeAmounts(amounts)
	for _, a := range merged {
		items = append(items, FormatAmount(a))
	}
	return strings.Join(items, ", "), items, nil
}

// decodeAmounts converts a generically-decoded amount list back into typed
// amounts via a marshal round-trip.
func decodeAmounts(v any) ([]Amount, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("re-encoding amounts: %w", err)
	}
	var amounts []Amount
	if err := json.Unmarshal(b, &amounts); err != nil {
		return nil, fmt.Errorf("decoding amounts: %w", err)
	}
	return amounts, nil
}

// ParseRegister decodes `hledger reg -O json`: a list of 5-tuples
// (date, secondaryDate, description, posting, runningTotal). The secondary
// date is decoded but unused downstream.
func ParseRegister(payload []byte) ([]RegisterRow, error) {
	var entries [][]json.RawMessage
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, malformed(payload, err)
	}

	rows := make([]RegisterRow, 0, len(entries))
	for _, e := range entries {
		if len(e) < 5 {
			return nil, malformed(payload, fmt.Errorf("register entry has %d fields, want 5", len(e)))
		}
		var row RegisterRow
		if err := json.Unmarshal(e[0], &row.Date); err != nil {
			return nil, malformed(payload, err)
		}
		// Secondary date may be null.
		_ = json.Unmarshal(e[1], &row.Date2)
		if err := json.Unmarshal(e[2], &row.Description); err != nil {
			return nil, malformed(payload, err)
		}
		var posting Posting
		if err := json.Unmarshal(e[3], &posting); err != nil {
			return nil, malformed(payload, err)
		}
		var running []Amount
		if err := json.Unmarshal(e[4], &running); err != nil {
			return nil, malformed(payload, err)
		}
		row.Account = posting.Account
		row.AmountDisplay = FormatAmounts(MergeAmounts(posting.Amounts))
		row.RunningDisplay = FormatAmounts(MergeAmounts(running))
		rows = append(rows, row)
	}
	return rows, nil
}
