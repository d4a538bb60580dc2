package sheet

import (
	"fmt"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/etnz/recovery"
	"github.com/shopspring/decimal"
)

// ParseNumber reads a number as it appears in a spreadsheet cell written in
// the locale of 'currency'.
//
// Currency symbols, percent signs and spaces are ignored, "(12,00)" is
// negative. When both '.' and ',' appear the last one is the decimal
// separator. A separator appearing several times is a thousands separator.
// A single separator is the currency's thousands separator when followed by
// exactly three digits, so "R$ 1.234" is 1234 in BRL and "1,234" is 1234 in
// USD. Otherwise, or when the currency is unknown, it is the decimal
// separator.
func ParseNumber(s, currency string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "−", "-") // unicode minus

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if strings.Trim(clean, "+-.,") == "" {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", recovery.ErrFormat, s)
	}

	dot, comma := strings.LastIndex(clean, "."), strings.LastIndex(clean, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case comma >= 0:
		clean = single(clean, ",", comma, currency)
	case dot >= 0:
		clean = single(clean, ".", dot, currency)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number: %v", recovery.ErrFormat, s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// single rewrites 'clean' where 'sep', found last at index i, is the only
// kind of separator.
func single(clean, sep string, i int, currency string) string {
	thousands := strings.Count(clean, sep) > 1
	if !thousands {
		if cur := money.GetCurrency(currency); cur != nil && cur.Thousand == sep {
			digits := clean[i+1:]
			thousands = len(digits) == 3 && strings.Trim(clean[:i], "+-0") != ""
		}
	}
	if thousands {
		return strings.ReplaceAll(clean, sep, "")
	}
	return strings.Replace(clean, sep, ".", 1)
}
