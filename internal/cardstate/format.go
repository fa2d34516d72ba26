package cardstate

import "strings"

// digitsOnly drops everything but ASCII digits.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

func limit(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// addGaps inserts a space before every gap offset that lies inside s.
func addGaps(s string, gaps []int) string {
	var b strings.Builder
	b.Grow(len(s) + len(gaps))
	next := 0
	for i := 0; i < len(s); i++ {
		if next < len(gaps) && i == gaps[next] {
			b.WriteByte(' ')
			next++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// typeFor returns the detected brand of digits, or the fallback formatting.
func typeFor(digits string) (CardType, bool) {
	if t, ok := Detect(digits); ok {
		return t, true
	}
	return fallbackType, false
}

// FormatNumber keeps digits up to the brand's longest length and groups them
// by the brand's gaps.
func FormatNumber(number string) string {
	d := digitsOnly(number)
	t, _ := typeFor(d)
	return addGaps(limit(d, t.MaxLength()), t.Gaps)
}

// FormatExpiry keeps up to four digits as MM/YY. A lone leading 2-9 can only
// be a month, so it is zero padded.
func FormatExpiry(expiry string) string {
	d := limit(digitsOnly(expiry), 4)
	switch {
	case len(d) == 1 && d[0] >= '2':
		return "0" + d
	case len(d) > 2:
		return d[:2] + "/" + d[2:]
	}
	return d
}

// FormatCVC keeps digits up to the code size of the number's brand.
func FormatCVC(cvc, number string) string {
	t, _ := typeFor(digitsOnly(number))
	return limit(digitsOnly(cvc), t.CodeSize)
}
