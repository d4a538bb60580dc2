package recovery

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a currency.
//
// The zero value is a valid amount of 0 in no currency. An empty currency is
// weak: it adopts the currency of the other operand in binary operations.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a number and an ISO currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	}
	return decimal.Zero
}

// KnownCurrency reports whether code is an ISO currency known to the formatter.
func KnownCurrency(code string) bool { return money.GetCurrency(code) != nil }

// String returns the amount formatted with the currency conventions, e.g. "R$1.234,56".
// Amounts without a known currency are printed with two decimals.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return m.value.StringFixed(2)
	}
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation with an explicit sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// Prorate returns the share of m corresponding to part/whole. whole must not be zero.
func (m Money) Prorate(part, whole Money) Money {
	return Money{value: m.value.Mul(part.value).Div(whole.value), cur: m.cur}
}

// Ratio returns m/n. n must not be zero.
func (m Money) Ratio(n Money) decimal.Decimal { return m.value.Div(n.value) }

// PercentOf returns m as a percentage of n. n must not be zero.
func (m Money) PercentOf(n Money) Percent {
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Round rounds the amount to the currency's minor unit (2 digits when unknown).
func (m Money) Round() Money {
	places := int32(2)
	if cur := money.GetCurrency(m.cur); cur != nil {
		places = int32(cur.Fraction)
	}
	return Money{value: m.value.Round(places), cur: m.cur}
}

// Float returns an approximate float value, for output adapters only.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// compatible reports whether m and n can be combined without a currency mismatch.
func compatible(m, n Money) bool { return m.cur == "" || n.cur == "" || m.cur == n.cur }

