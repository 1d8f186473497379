package formatting

import (
	"github.com/dustin/go-humanize"
	"math/big"
	"strconv"
	"strings"
)

// DecimalMask turns a keystroke stream into a fixed two-decimal display string.
// The last two digits typed are always the fraction, so the user never types
// the separator.
type DecimalMask struct {
	MaxDigits int    // 0 means no cap
	Symbol    string // prefix, e.g. "$"
	Grouping  bool   // thousands separators in the integer part
}

var (
	Weight   = DecimalMask{MaxDigits: 5}
	Price    = DecimalMask{MaxDigits: 11, Symbol: "$", Grouping: true}
	Odometer = DecimalMask{MaxDigits: 10, Grouping: true}
)

// MaskFor returns the preset registered under kind ("weight", "price", "odometer").
func MaskFor(kind string) (DecimalMask, bool) {
	switch strings.ToLower(kind) {
	case "weight":
		return Weight, true
	case "price":
		return Price, true
	case "odometer", "mileage":
		return Odometer, true
	}
	return DecimalMask{}, false
}

// Digits strips every non-digit from raw and truncates the result to the cap.
func (m DecimalMask) Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	d := b.String()
	if m.MaxDigits > 0 && len(d) > m.MaxDigits {
		d = d[:m.MaxDigits]
	}
	return d
}

// Format renders raw as "<symbol><int>.<frac>". Empty input stays empty.
func (m DecimalMask) Format(raw string) string {
	d := m.Digits(raw)
	if d == "" {
		return ""
	}

	intPart, fracPart := split(d)
	if m.Grouping {
		intPart = group(intPart)
	}
	return m.Symbol + intPart + "." + fracPart
}

// Value recovers the decimal number behind a display string. Uncapped masks
// may hold more digits than a float64 keeps exactly.
func (m DecimalMask) Value(display string) (float64, error) {
	d := m.Digits(display)
	if d == "" {
		return 0, nil
	}
	intPart, fracPart := split(d)
	return strconv.ParseFloat(intPart+"."+fracPart, 64)
}

// Cents recovers the integer digit value behind a display string, i.e. the
// quantity in hundredths. Displays with more than 18 digits overflow int64 and
// return a range error.
func (m DecimalMask) Cents(display string) (int64, error) {
	d := m.Digits(display)
	if d == "" {
		return 0, nil
	}
	return strconv.ParseInt(d, 10, 64)
}

func split(d string) (string, string) {
	if len(d) <= 2 {
		return "0", strings.Repeat("0", 2-len(d)) + d
	}

	intPart := strings.TrimLeft(d[:len(d)-2], "0")
	if intPart == "" {
		intPart = "0"
	}
	return intPart, d[len(d)-2:]
}

func group(intPart string) string {
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return intPart
	}
	return humanize.BigComma(n)
}
