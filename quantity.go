package hledgerweb

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Quantity is hledger's JSON encoding of a decimal number. Normally
// FloatingPoint == DecimalMantissa / 10^DecimalPlaces, but see
// TrueIntegerValue for the one case where that relation lies.
type Quantity struct {
	DecimalMantissa int64   `json:"decimalMantissa"`
	DecimalPlaces   int     `json:"decimalPlaces"`
	FloatingPoint   float64 `json:"floatingPoint"`
}

// Amount is a quantity tagged with a commodity.
type Amount struct {
	Commodity string   `json:"acommodity"`
	Quantity  Quantity `json:"aquantity"`
}

// NoDecimalCommodity is the commodity whose amounts are always integers and
// whose display style uses '.' as the thousands separator. hledger's lexer
// cannot tell "139.400" (one hundred thirty-nine thousand four hundred) from
// a genuine decimal, so quantities of this commodity need re-derivation.
// Settable once at startup for journals using a different such commodity.
var NoDecimalCommodity = "vnd"

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// TrueIntegerValue returns the intended integer value of a no-decimal
// commodity quantity.
//
// hledger parses both "133,824,966.0" and "139.400" with DecimalPlaces > 0.
// If the mantissa is divisible by 10^places the trailing digits are zeros and
// the dot was a real decimal point, so the value is mantissa/10^places.
// Otherwise the dot was a thousands separator and the mantissa already is the
// value. Every computation on such quantities (formatting, merging, ranking)
// must go through here; mixing this with raw floats double-counts.
func TrueIntegerValue(q Quantity) int64 {
	if q.DecimalPlaces <= 0 {
		return q.DecimalMantissa
	}
	div := pow10(q.DecimalPlaces)
	if q.DecimalMantissa%div == 0 {
		return q.DecimalMantissa / div
	}
	return q.DecimalMantissa
}

// noDecimal reports whether the commodity renders as a plain grouped integer.
func noDecimal(commodity string) bool {
	return strings.EqualFold(commodity, NoDecimalCommodity)
}

// FormatAmount renders one amount for display: digits grouped by three,
// exactly DecimalPlaces fractional digits, commodity appended.
func FormatAmount(a Amount) string {
	q := a.Quantity
	var formatted string
	if q.DecimalPlaces == 0 || noDecimal(a.Commodity) {
		formatted = money.NewFormatter(0, ".", ",", "", "1").Format(TrueIntegerValue(q))
	} else {
		formatted = money.NewFormatter(q.DecimalPlaces, ".", ",", "", "1").Format(q.DecimalMantissa)
	}
	if a.Commodity == "" {
		return formatted
	}
	return formatted + " " + a.Commodity
}

// FormatAmounts renders a list of amounts as a comma-separated string.
func FormatAmounts(amounts []Amount) string {
	parts := make([]string, 0, len(amounts))
	for _, a := range amounts {
		parts = append(parts, FormatAmount(a))
	}
	return strings.Join(parts, ", ")
}

// MergeAmounts sums amounts sharing a commodity, preserving the order of
// first appearance.
//
// No-decimal commodity amounts are summed over their true integer values:
// summing raw mantissas would double count a "139.400" style quantity, and
// summing floats would pick up the bogus fractional reading. All other
// commodities are summed exactly over their floating values with the largest
// observed DecimalPlaces kept for display.
func MergeAmounts(amounts []Amount) []Amount {
	type acc struct {
		sum    decimal.Decimal
		places int
	}
	order := make([]string, 0, len(amounts))
	sums := make(map[string]*acc)
	for _, a := range amounts {
		s, ok := sums[a.Commodity]
		if !ok {
			s = &acc{}
			sums[a.Commodity] = s
			order = append(order, a.Commodity)
		}
		if noDecimal(a.Commodity) {
			s.sum = s.sum.Add(decimal.NewFromInt(TrueIntegerValue(a.Quantity)))
		} else {
			s.sum = s.sum.Add(decimal.NewFromFloat(a.Quantity.FloatingPoint))
			if a.Quantity.DecimalPlaces > s.places {
				s.places = a.Quantity.DecimalPlaces
			}
		}
	}

	merged := make([]Amount, 0, len(order))
	for _, commodity := range order {
		s := sums[commodity]
		merged = append(merged, Amount{
			Commodity: commodity,
			Quantity: Quantity{
				DecimalMantissa: s.sum.Shift(int32(s.places)).Round(0).IntPart(),
				DecimalPlaces:   s.places,
				FloatingPoint:   s.sum.InexactFloat64(),
			},
		})
	}
	return merged
}

// AbsoluteMagnitude computes a single sortable magnitude for a set of
// amounts: the sum of absolute true values across all commodities. It is a
// crude ranking key, not a currency-aware comparison.
func AbsoluteMagnitude(amounts []Amount) int64 {
	total := decimal.Zero
	for _, a := range amounts {
		var v decimal.Decimal
		if noDecimal(a.Commodity) {
			v = decimal.NewFromInt(TrueIntegerValue(a.Quantity))
		} else {
			v = decimal.NewFromFloat(a.Quantity.FloatingPoint)
		}
		total = total.Add(v.Abs())
	}
	return total.Round(0).IntPart()
}

// NormalizeAmountExpr prepares a user-entered amount expression for
// write-back into the journal. For the no-decimal commodity a trailing
// decimal point is forced ("139,400. vnd") so that hledger's lexer reads the
// number as the intended integer instead of re-triggering the
// thousands-separator ambiguity. Other expressions pass through untouched.
func NormalizeAmountExpr(expr string) string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return expr
	}
	fields := strings.Fields(expr)
	last := fields[len(fields)-1]
	if !noDecimal(last) {
		return expr
	}
	number := strings.TrimSpace(strings.TrimSuffix(expr, last))
	if number == "" || strings.Contains(number, ".") {
		return expr
	}
	return number + ". " + last
}
