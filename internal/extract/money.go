package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// moneyRe matches compact box-office amounts such as "$2.1M" or "£500K".
// Only the dollar and pound symbols are recognised.
var moneyRe = regexp.MustCompile(`([$£])\s*([\d.,]+)\s*([MK])`)

// ParseMoney normalizes a compact currency amount to millions: "$500K" is
// 0.5 and "$2.1M" is 2.1. Text without a currency symbol and magnitude
// suffix does not match, including already-normalized numbers.
func ParseMoney(raw string) (millions float64, ok bool) {
	m := moneyRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if m[3] == "K" {
		v /= 1000
	}
	return v, true
}

// MoneyPtr is ParseMoney returning nil on no match.
func MoneyPtr(raw string) *float64 {
	v, ok := ParseMoney(raw)
	if !ok {
		return nil
	}
	return &v
}
