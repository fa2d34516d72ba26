package cardstate

import (
	"strconv"
	"time"

	"github.com/jask/cardinput/internal/cardform"
)

// maxYearsAhead bounds how far in the future an expiry year may be.
const maxYearsAhead = 19

// Luhn reports whether a digits-only number carries a valid check digit.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// CheckDigit returns the digit that makes body+digit pass Luhn.
func CheckDigit(body string) byte {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return byte('0' + (10-sum%10)%10)
}

// ValidateNumber classifies a formatted or raw card number.
func ValidateNumber(number string) cardform.Validity {
	d := digitsOnly(number)
	if d == "" {
		return cardform.ValidityIncomplete
	}
	cs := candidates(d)
	if len(cs) == 0 {
		return cardform.ValidityInvalid
	}
	t, ok := Detect(d)
	if !ok {
		// more than one brand is still possible
		return cardform.ValidityIncomplete
	}
	checksum := !t.Luhn || Luhn(d)
	switch {
	case t.hasLength(len(d)) && checksum:
		return cardform.ValidityValid
	case len(d) < t.MaxLength():
		return cardform.ValidityIncomplete
	}
	return cardform.ValidityInvalid
}

// ValidateExpiry classifies an MM/YY expiry. A card is good through the last
// day of its month.
func ValidateExpiry(expiry string, now time.Time) cardform.Validity {
	d := digitsOnly(expiry)
	if d == "" {
		return cardform.ValidityIncomplete
	}
	if len(d) > 4 {
		return cardform.ValidityInvalid
	}

	if len(d) == 1 {
		if d[0] > '1' {
			return cardform.ValidityInvalid
		}
		return cardform.ValidityIncomplete
	}
	month, _ := strconv.Atoi(d[:2])
	if month < 1 || month > 12 {
		return cardform.ValidityInvalid
	}

	switch len(d) {
	case 2:
		return cardform.ValidityIncomplete
	case 3:
		// the decade digit alone must still allow a year in range
		if !decadeInRange(int(d[2]-'0'), now.Year()) {
			return cardform.ValidityInvalid
		}
		return cardform.ValidityIncomplete
	}

	year := expandYear(mustAtoi(d[2:]), now.Year())
	end := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	switch {
	case !now.Before(end):
		return cardform.ValidityInvalid
	case year > now.Year()+maxYearsAhead:
		return cardform.ValidityInvalid
	}
	return cardform.ValidityValid
}

// expandYear turns a two-digit year into the full year in this century, or in
// the next one when that lands within maxYearsAhead of thisYear.
func expandYear(yy, thisYear int) int {
	year := thisYear/100*100 + yy
	if year < thisYear && year+100 <= thisYear+maxYearsAhead {
		year += 100
	}
	return year
}

func decadeInRange(decade, thisYear int) bool {
	for y := thisYear; y <= thisYear+maxYearsAhead; y++ {
		if y%100/10 == decade {
			return true
		}
	}
	return false
}

// ValidateCVC classifies a security code against the number's brand.
func ValidateCVC(cvc, number string) cardform.Validity {
	d := digitsOnly(cvc)
	t, known := typeFor(digitsOnly(number))
	size := t.CodeSize
	switch {
	case d == "":
		return cardform.ValidityIncomplete
	case !known && (len(d) == 3 || len(d) == 4):
		return cardform.ValidityValid
	case len(d) == size:
		return cardform.ValidityValid
	case len(d) < size:
		return cardform.ValidityIncomplete
	}
	return cardform.ValidityInvalid
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
