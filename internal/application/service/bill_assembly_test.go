package service

import (
	"strings"
	"testing"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore() entity.StoreDetails {
	return entity.StoreDetails{
		StoreName:     "SHARMA MEDICAL HALL",
		StoreAddress:  "12 MG ROAD\nBHOPAL",
		StoreSubtitle: "CHEMISTS & DRUGGISTS",
		Jurisdiction:  "BHOPAL",
		DLNumber:      "20B-1234",
	}
}

func TestAssembleBill_Golden(t *testing.T) {
	items := []entity.LineItem{
		{Quantity: 3, ProductName: "TELMA", BatchNo: "18240211", Expiry: "Feb-27", UnitPrice: 227.14},
		{Quantity: 1, ProductName: "pan 40", BatchNo: "B1", Expiry: "Jan-26", UnitPrice: 99.5, DiscountPercent: 10},
	}
	totals := ComputeTotals(items, 10)

	bill := AssembleBill(
		sampleStore(),
		entity.CustomerFields{Name: "Jane Doe", Address: "Flat 4\nArera Colony", PrescribedBy: "Dr. Rao"},
		items,
		totals,
		entity.BillMeta{Number: "1042", Date: "2024-02-18", Time: "09:15"},
	)

	assert.Equal(t, entity.BillHeader{
		StoreName:    "SHARMA MEDICAL HALL",
		AddressLines: []string{"12 MG ROAD", "BHOPAL"},
		Subtitle:     "CHEMISTS & DRUGGISTS",
		LicenseLine:  "D.L. NO. 20B-1234",
	}, bill.Header)
	assert.Equal(t, []string{"Flat 4", "Arera Colony"}, bill.Recipient.AddressLines)
	assert.Equal(t, "Dr. Rao", bill.Recipient.PrescribedBy)
	assert.Equal(t, entity.BillInfo{Number: "1042", Date: "18/02/2024", Time: "09:15"}, bill.Info)

	require.Len(t, bill.Items, 2)
	first := bill.Items[0]
	assert.Equal(t, 1, first.Serial)
	assert.Equal(t, "3", first.QuantityText)
	assert.Equal(t, "227.14", first.PriceText)
	assert.Equal(t, "0.0%", first.DiscountText)
	assert.Equal(t, "681.42", first.AmountText)
	second := bill.Items[1]
	assert.Equal(t, 2, second.Serial)
	assert.Equal(t, "10.0%", second.DiscountText)
	assert.Equal(t, "99.50", second.AmountText, "row amount excludes its own discount")

	// 780.92 - 9.95 - 10 = 760.97
	assert.Equal(t, "780.92", bill.Totals.SubtotalText)
	assert.Equal(t, "9.95", bill.Totals.DiscountText)
	assert.Equal(t, "770.97", bill.Totals.AfterDiscountText)
	assert.Equal(t, "10.00", bill.Totals.CashDiscountText)
	assert.Equal(t, "0.970", bill.Totals.RoundOffText)
	assert.Equal(t, "₹760.00", bill.Totals.PayableText)
	assert.Equal(t, "RS. SEVEN HUNDRED SIXTY ONLY", bill.Totals.AmountInWords)

	assert.Equal(t, "All Medicines subject to BHOPAL Jurisdiction only", bill.Footer.JurisdictionLine)
	assert.Equal(t, "Price Inclusive of all taxes", bill.Footer.TaxNote)
	assert.Equal(t, "ISSUED BY :  SHARMA MEDICAL HALL", bill.Footer.IssuedBy)
}

func TestAssembleBill_TaxLineOnlyWhenSet(t *testing.T) {
	store := sampleStore()
	bill := AssembleBill(store, entity.CustomerFields{}, nil, ComputeTotals(nil, 0), entity.BillMeta{})
	assert.Empty(t, bill.Header.TaxLine)

	store.GSTNumber = "23ABCDE1234F1Z5"
	bill = AssembleBill(store, entity.CustomerFields{}, nil, ComputeTotals(nil, 0), entity.BillMeta{})
	assert.Equal(t, "GST NO: 23ABCDE1234F1Z5", bill.Header.TaxLine)
}

func TestAssembleBill_DefaultJurisdiction(t *testing.T) {
	store := sampleStore()
	store.Jurisdiction = ""
	bill := AssembleBill(store, entity.CustomerFields{}, nil, ComputeTotals(nil, 0), entity.BillMeta{})

	assert.Equal(t, "All Medicines subject to Bhopal Jurisdiction only", bill.Footer.JurisdictionLine)
	assert.Equal(t, "RS. ZERO ONLY", bill.Totals.AmountInWords)
	assert.Empty(t, bill.Items)
}

func TestFormatBillDate(t *testing.T) {
	assert.Equal(t, "18/02/2024", FormatBillDate("2024-02-18"))
	assert.Equal(t, "", FormatBillDate(" "))
	assert.Equal(t, "next week", FormatBillDate("next week"))
}

func TestAssembleBill_HugeTotalWordsStayPositive(t *testing.T) {
	items := []entity.LineItem{{Quantity: ParseAmount("1e19"), UnitPrice: 1}}

	bill := AssembleBill(sampleStore(), entity.CustomerFields{}, items, ComputeTotals(items, 0), entity.BillMeta{})

	assert.True(t, strings.HasPrefix(bill.Totals.AmountInWords, "RS. "))
	assert.NotContains(t, bill.Totals.AmountInWords, "MINUS")
}
