// Package numwords renders whole amounts as lowercase English words using the
// Indian numbering scale (thousand, lakh).
package numwords

import (
	"math"
	"strings"
)

var (
	ones  = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	teens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tens  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

const (
	thousand = 1000
	lakh     = 100000
)

// Convert returns n in words, e.g. 119 -> "one hundred nineteen" and
// 100000 -> "one lakh". No conjunctions and no currency unit are added.
// Negative values are prefixed with "minus".
func Convert(n int64) string {
	if n < 0 {
		// -(n+1) keeps math.MinInt64 in range.
		return "minus " + convert(uint64(-(n+1))+1)
	}
	return convert(uint64(n))
}

func convert(n uint64) string {
	if n == 0 {
		return "zero"
	}
	if n < thousand {
		return strings.TrimSpace(hundreds(n))
	}

	var b strings.Builder
	if n >= lakh {
		lakhs := n / lakh
		if lakhs < thousand {
			b.WriteString(hundreds(lakhs))
		} else {
			// Beyond 999 lakh the group count is itself spelled out in full.
			b.WriteString(convert(lakhs))
			b.WriteByte(' ')
		}
		b.WriteString("lakh ")
		n %= lakh
	}
	if n >= thousand {
		b.WriteString(hundreds(n / thousand))
		b.WriteString("thousand ")
		n %= thousand
	}
	b.WriteString(hundreds(n))
	return strings.TrimSpace(b.String())
}

// hundreds renders 0 <= n < 1000 with a trailing space after every word.
func hundreds(n uint64) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" hundred ")
		n %= 100
	}
	if n >= 20 {
		b.WriteString(tens[n/10])
		b.WriteByte(' ')
		n %= 10
	}
	if n >= 10 {
		b.WriteString(teens[n-10])
		b.WriteByte(' ')
		n = 0
	}
	if n > 0 {
		b.WriteString(ones[n])
		b.WriteByte(' ')
	}
	return b.String()
}

// Rupees renders the payable line printed under the totals block,
// e.g. 681 -> "RS. SIX HUNDRED EIGHTY ONE ONLY".
func Rupees(n int64) string {
	return "RS. " + strings.ToUpper(Convert(n)) + " ONLY"
}

// RupeesFloat is Rupees for a computed total. v is rounded to the nearest
// whole amount; magnitudes past the uint64 range are clamped to it and NaN
// reads as zero.
func RupeesFloat(v float64) string {
	return "RS. " + strings.ToUpper(ConvertFloat(v)) + " ONLY"
}

// ConvertFloat is Convert for a float, rounded to the nearest whole number.
func ConvertFloat(v float64) string {
	r := math.Round(v)
	if math.IsNaN(r) || r == 0 {
		return "zero"
	}

	mag := math.Abs(r)
	var n uint64
	if mag >= 0x1p64 {
		n = math.MaxUint64
	} else {
		n = uint64(mag)
	}
	if r < 0 {
		return "minus " + convert(n)
	}
	return convert(n)
}
