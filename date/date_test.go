package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// Overflowing day and month roll over like time.Date.
	d := New(2025, 12, 32)
	if d.String() != "2026-01-01" {
		t.Errorf("New(2025, 12, 32) = %s, want 2026-01-01", d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-08-03", "2025-08-03"},
		{"2025-8-3", "2025-08-03"},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if d.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, d, tt.want)
		}
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse should reject garbage")
	}
}

func TestAddAndBefore(t *testing.T) {
	d := New(2025, time.August, 31)
	next := d.Add(1)
	if next.String() != "2025-09-01" {
		t.Errorf("Add(1) = %s, want 2025-09-01", next)
	}
	if !d.Before(next) || next.Before(d) {
		t.Error("Before is not consistent with Add")
	}
}
