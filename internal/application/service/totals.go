package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sangkips/medbill-api/internal/domain/entity"
)

// leadingNumber matches the longest numeric prefix of a form value, so
// "12.5 tabs" reads as 12.5.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount coerces a raw row value (qty, MRP, discount) into a number. The
// first decimal comma is read as a decimal point. Anything unparsable,
// non-finite or blank is 0.
func ParseAmount(raw string) float64 {
	return parseLeadingFloat(strings.Replace(raw, ",", ".", 1))
}

// parseLeadingFloat reads the longest leading number after any leading space,
// with no comma handling: "12,5" is 12. The cash discount is read this way.
func parseLeadingFloat(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0
	}
	return v
}

// ComputeTotals aggregates the rows and the flat cash discount. The payable
// total is the floor of the discounted amount; the dropped fraction is
// reported as RoundOff to three decimals. Negative results are not clamped.
func ComputeTotals(items []entity.LineItem, cashDiscount float64) entity.Totals {
	var subtotal, discount float64
	for _, item := range items {
		subtotal += item.Amount()
		discount += item.DiscountAmount()
	}

	afterDiscount := subtotal - discount
	beforeRound := afterDiscount - cashDiscount
	total := math.Floor(beforeRound)

	return entity.Totals{
		Subtotal:         subtotal,
		TotalDiscount:    discount,
		AfterDiscount:    afterDiscount,
		CashDiscount:     cashDiscount,
		TotalBeforeRound: beforeRound,
		RoundOff:         math.Round((beforeRound-total)*1000) / 1000,
		Total:            total,
	}
}
