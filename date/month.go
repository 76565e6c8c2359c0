package date

import (
	"fmt"
	"time"
)

const monthFormat = "2006-01"

// Month is one calendar month, the navigation unit of the report views.
type Month struct {
	y int
	m time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month { return Month{y: d.Year(), m: d.Month()} }

// ThisMonth returns the current month.
func ThisMonth() Month { return MonthOf(Today()) }

// ParseMonth parses a "2006-01" month string. An empty string means the
// current month.
func ParseMonth(str string) (Month, error) {
	if str == "" {
		return ThisMonth(), nil
	}
	on, err := time.Parse(monthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, monthFormat, err)
	}
	return Month{y: on.Year(), m: on.Month()}, nil
}

// String formats the month as "2006-01".
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(monthFormat)
}

// Begin returns the first day of the month.
func (m Month) Begin() Date { return New(m.y, m.m, 1) }

// End returns the first day of the following month, matching hledger's
// end-exclusive -e flag.
func (m Month) End() Date { return New(m.y, m.m+1, 1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return MonthOf(New(m.y, m.m-1, 1)) }

// Next returns the following month.
func (m Month) Next() Month { return MonthOf(m.End()) }
