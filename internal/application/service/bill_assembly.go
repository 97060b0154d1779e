package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/pkg/numwords"
)

// DefaultJurisdiction is printed in the footer when the store has none.
const DefaultJurisdiction = "Bhopal"

// AssembleBill merges the store identity, recipient, rows and totals into one
// renderable document. It performs no arithmetic beyond the per-row amount.
func AssembleBill(
	store entity.StoreDetails,
	customer entity.CustomerFields,
	items []entity.LineItem,
	totals entity.Totals,
	meta entity.BillMeta,
) *entity.Bill {
	bill := &entity.Bill{
		Header: entity.BillHeader{
			StoreName:    store.StoreName,
			AddressLines: splitLines(store.StoreAddress),
			Subtitle:     store.StoreSubtitle,
			LicenseLine:  "D.L. NO. " + store.DLNumber,
		},
		Recipient: entity.BillRecipient{
			Name:         customer.Name,
			AddressLines: splitLines(customer.Address),
			PrescribedBy: customer.PrescribedBy,
		},
		Info: entity.BillInfo{
			Number: meta.Number,
			Date:   FormatBillDate(meta.Date),
			Time:   meta.Time,
		},
		Items:  make([]entity.BillRow, 0, len(items)),
		Totals: formatTotals(totals),
		Footer: entity.BillFooter{
			JurisdictionLine: "All Medicines subject to " + jurisdiction(store) + " Jurisdiction only",
			TaxNote:          "Price Inclusive of all taxes",
			IssuedBy:         "ISSUED BY :  " + store.StoreName,
		},
		CustomerName: customer.Name,
		RawDate:      meta.Date,
		RawTime:      meta.Time,
	}
	if store.GSTNumber != "" {
		bill.Header.TaxLine = "GST NO: " + store.GSTNumber
	}

	for i, item := range items {
		amount := item.Amount()
		bill.Items = append(bill.Items, entity.BillRow{
			Serial:          i + 1,
			Quantity:        item.Quantity,
			ProductName:     item.ProductName,
			BatchNo:         item.BatchNo,
			Expiry:          item.Expiry,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			Amount:          amount,
			QuantityText:    strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			PriceText:       money(item.UnitPrice),
			DiscountText:    fmt.Sprintf("%.1f%%", item.DiscountPercent),
			AmountText:      money(amount),
		})
	}

	return bill
}

func formatTotals(t entity.Totals) entity.BillTotals {
	return entity.BillTotals{
		Totals:            t,
		SubtotalText:      money(t.Subtotal),
		DiscountText:      money(t.TotalDiscount),
		AfterDiscountText: money(t.AfterDiscount),
		CashDiscountText:  money(t.CashDiscount),
		RoundOffText:      fmt.Sprintf("%.3f", t.RoundOff),
		PayableText:       "₹" + money(t.Total),
		AmountInWords:     numwords.RupeesFloat(t.Total),
	}
}

// FormatBillDate renders an ISO date (YYYY-MM-DD) as DD/MM/YYYY. Blank input
// stays blank; anything else that does not parse is returned unchanged.
func FormatBillDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("02/01/2006")
}

func jurisdiction(store entity.StoreDetails) string {
	if store.Jurisdiction == "" {
		return DefaultJurisdiction
	}
	return store.Jurisdiction
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func money(v float64) string {
	// Avoid printing "-0.00" for values that round to zero.
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
