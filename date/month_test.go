package date

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	m, err := ParseMonth("2025-08")
	if err != nil {
		t.Fatal(err)
	}
	if m.Begin().String() != "2025-08-01" {
		t.Errorf("Begin() = %s, want 2025-08-01", m.Begin())
	}
	// End is the first day of the following month, matching an exclusive -e.
	if m.End().String() != "2025-09-01" {
		t.Errorf("End() = %s, want 2025-09-01", m.End())
	}
}

func TestMonthYearBoundary(t *testing.T) {
	dec := Month{y: 2025, m: time.December}
	if dec.Next().String() != "2026-01" {
		t.Errorf("Next() = %s, want 2026-01", dec.Next())
	}
	if dec.End().String() != "2026-01-01" {
		t.Errorf("End() = %s, want 2026-01-01", dec.End())
	}

	jan := Month{y: 2026, m: time.January}
	if jan.Prev().String() != "2025-12" {
		t.Errorf("Prev() = %s, want 2025-12", jan.Prev())
	}
}

func TestParseMonth(t *testing.T) {
	if _, err := ParseMonth("08-2025"); err == nil {
		t.Error("ParseMonth should reject a swapped format")
	}

	// Empty means the current month.
	m, err := ParseMonth("")
	if err != nil {
		t.Fatal(err)
	}
	if m != ThisMonth() {
		t.Errorf("ParseMonth(\"\") = %s, want %s", m, ThisMonth())
	}
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(New(2025, time.August, 25))
	if m.String() != "2025-08" {
		t.Errorf("MonthOf() = %s, want 2025-08", m)
	}
}
