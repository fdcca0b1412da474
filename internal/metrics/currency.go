package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/settings"
)

// VNDPerUSD is the fixed display conversion rate. It is a design
// constant carried over from the original bill formatting, a rough
// approximation rather than a live exchange rate.
const VNDPerUSD = 23000

// FormatCurrency renders a VND amount for display. VND keeps the
// integer amount with dot grouping and the dong sign; USD divides by
// the fixed rate and shows two decimals.
func FormatCurrency(amountVND int, currency string) string {
	if currency == settings.CurrencyUSD {
		usd := float64(amountVND) / VNDPerUSD
		return "$" + groupThousands(fmt.Sprintf("%.2f", usd), ",")
	}
	return groupThousands(strconv.Itoa(amountVND), ".") + " ₫"
}

// ParseVND recovers the integer amount from a FormatCurrency VND
// string.
func ParseVND(s string) (int, error) {
	s = strings.TrimSuffix(s, " ₫")
	s = strings.ReplaceAll(s, ".", "")
	neg := strings.HasPrefix(s, "-")
	n, err := strconv.Atoi(strings.TrimPrefix(s, "-"))
	if err != nil {
		return 0, fmt.Errorf("not a VND amount: %q", s)
	}
	if neg {
		n = -n
	}
	return n, nil
}

// groupThousands inserts sep every three digits of the integer part,
// leaving any sign and decimal part untouched.
func groupThousands(s, sep string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + fracPart
}
