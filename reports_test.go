package hledgerweb

import (
	"errors"
	"testing"
)

func TestParseBalances(t *testing.T) {
	rows, err := ParseBalances([]byte(balJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	assets := rows[0]
	if assets.Name != "assets" || assets.Depth != 1 {
		t.Errorf("row 0 = (%q, depth %d)", assets.Name, assets.Depth)
	}
	if assets.AmountsDisplay != "4,860,600 vnd" {
		t.Errorf("assets display = %q", assets.AmountsDisplay)
	}

	// The ambiguous expense quantity must rank by its true value.
	food := rows[2]
	if food.AbsoluteTotal != 139400 {
		t.Errorf("food magnitude = %d, want 139400", food.AbsoluteTotal)
	}
}

func TestParseBalancesEmpty(t *testing.T) {
	rows, err := ParseBalances([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParseBalancesMalformed(t *testing.T) {
	_, err := ParseBalances([]byte(`[[["assets", "assets", 1]], []]`))
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("error is %T, want *MalformedResponseError", err)
	}
}

func TestAccountDepth(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"assets", 0},
		{"assets:bank", 1},
		{"assets:bank:checking", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := AccountDepth(tt.name); got != tt.want {
			t.Errorf("AccountDepth(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseCompoundReport(t *testing.T) {
	report, err := ParseCompoundReport([]byte(isJSON))
	if err != nil {
		t.Fatal(err)
	}
	if report.Title != "Income Statement 2025-08-01..2025-08-25" {
		t.Errorf("title = %q", report.Title)
	}
	if len(report.Subreports) != 2 {
		t.Fatalf("got %d subreports, want 2", len(report.Subreports))
	}

	revenues := report.Subreports[0]
	if revenues.Title != "Revenues" || revenues.Increases {
		t.Errorf("revenues = (%q, increases %v)", revenues.Title, revenues.Increases)
	}
	if len(revenues.Rows) != 1 || revenues.Rows[0].Name != "income:salary" {
		t.Fatalf("revenues rows = %v", revenues.Rows)
	}
	if revenues.Rows[0].Depth != 1 {
		t.Errorf("salary depth = %d, want 1", revenues.Rows[0].Depth)
	}
	if revenues.TotalDisplay != "20,000,000 vnd" {
		t.Errorf("revenues total = %q", revenues.TotalDisplay)
	}

	// A nested-list row name degrades to empty instead of failing the parse.
	expenses := report.Subreports[1]
	if !expenses.Increases {
		t.Error("expenses should flag increases as normal")
	}
	if len(expenses.Rows) != 1 {
		t.Fatalf("expenses rows = %v", expenses.Rows)
	}
	if expenses.Rows[0].Name != "" {
		t.Errorf("nested-list name = %q, want empty", expenses.Rows[0].Name)
	}
	if expenses.Rows[0].AmountsDisplay != "139,400 vnd" {
		t.Errorf("expenses row display = %q", expenses.Rows[0].AmountsDisplay)
	}

	if report.GrandTotalDisplay != "19,860,600 vnd" {
		t.Errorf("grand total = %q", report.GrandTotalDisplay)
	}
}

func TestParseCompoundReportMalformed(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":           `garbage`,
		"missing subreports": `{"cbrTitle": "x"}`,
		"subreport not list": `{"cbrSubreports": [42]}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCompoundReport([]byte(payload)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseRegister(t *testing.T) {
	rows, err := ParseRegister([]byte(regJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	lunch := rows[1]
	if lunch.Date != "2025-08-03" || lunch.Description != "Pho lunch" {
		t.Errorf("row = (%s, %q)", lunch.Date, lunch.Description)
	}
	if lunch.Account != "assets:cash" {
		t.Errorf("account = %q", lunch.Account)
	}
	if lunch.AmountDisplay != "-139,400 vnd" {
		t.Errorf("amount = %q", lunch.AmountDisplay)
	}
	if lunch.RunningDisplay != "4,860,600 vnd" {
		t.Errorf("running = %q", lunch.RunningDisplay)
	}
	// Null secondary dates stay empty.
	if lunch.Date2 != "" {
		t.Errorf("date2 = %q, want empty", lunch.Date2)
	}
}

func TestParseRegisterMalformed(t *testing.T) {
	_, err := ParseRegister([]byte(`[["2025-08-03", null, "short tuple"]]`))
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("error is %T, want *MalformedResponseError", err)
	}
}
