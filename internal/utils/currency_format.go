package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders a whole-rupiah amount with the Indonesian thousands
// separator, e.g. 1234567 becomes "Rp 1.234.567". Negative amounts keep the
// sign in front of the currency marker.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.Abs().Truncate(0).String()

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	if amount.IsNegative() {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
