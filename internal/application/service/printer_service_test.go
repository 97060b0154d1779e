package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/pkg/metrics"
	"github.com/sangkips/medbill-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill() *entity.Bill {
	items := []entity.LineItem{
		{Quantity: 3, ProductName: "TELMA", BatchNo: "18240211", Expiry: "Feb-27", UnitPrice: 227.14},
		{Quantity: 1, ProductName: "<b>PAN</b>", BatchNo: "B1", Expiry: "Jan-26", UnitPrice: 99.5, DiscountPercent: 10},
	}
	return AssembleBill(
		sampleStore(),
		entity.CustomerFields{Name: "Jane Doe!!", PrescribedBy: "Dr. Rao"},
		items,
		ComputeTotals(items, 10),
		entity.BillMeta{Number: "1042", Date: "2024-02-18", Time: "09:15"},
	)
}

func TestPrinterService_RenderHTML(t *testing.T) {
	m := metrics.NewRegistry()
	svc := NewPrinterService(printer.NewNullPrinter(), "none", 0, m)

	doc, err := svc.RenderHTML(sampleBill())
	require.NoError(t, err)

	html := string(doc.HTML)
	assert.Equal(t, "Jane_Doe_0915_2024-02-18", doc.Title)
	assert.Contains(t, html, "<title>Jane_Doe_0915_2024-02-18</title>")
	assert.Contains(t, html, "&lt;b&gt;PAN&lt;/b&gt;")
	assert.NotContains(t, html, "<b>PAN</b>")
	assert.Contains(t, html, "RS. SEVEN HUNDRED SIXTY ONLY")
	assert.Contains(t, html, "window.print()")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Prints.WithLabelValues("html")))
}

func TestPrinterService_FormatBill(t *testing.T) {
	narrow := NewPrinterService(printer.NewNullPrinter(), "none", 48, nil)
	out := narrow.FormatBill(sampleBill())

	assert.True(t, bytes.HasPrefix(out, []byte{0x1B, 0x40}), "starts with printer init")
	assert.Contains(t, string(out), "SHARMA MEDICAL HALL")
	assert.Contains(t, string(out), "1. 3x TELMA")
	assert.Contains(t, string(out), "Rs. 760.00")
	assert.NotContains(t, string(out), "₹")

	wide := NewPrinterService(printer.NewNullPrinter(), "none", 80, nil)
	assert.Contains(t, string(wide.FormatBill(sampleBill())), "PRODUCT")
}

func TestPrinterService_PrintBill(t *testing.T) {
	buf := printer.NewBufferPrinter()
	m := metrics.NewRegistry()
	svc := NewPrinterService(buf, "buffer", 48, m)

	require.NoError(t, svc.PrintBill(sampleBill()))
	require.Len(t, buf.Jobs(), 1)
	assert.Contains(t, string(buf.Jobs()[0]), "PLEASE PAY:")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Prints.WithLabelValues("thermal")))

	buf.FailWith(errors.New("paper out"))
	assert.ErrorContains(t, svc.PrintBill(sampleBill()), "paper out")
	assert.Len(t, buf.Jobs(), 1)
}

func TestPrinterService_StatusAndTestPrint(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", 0, nil)
	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.Equal(t, 48, status.Width)

	buf := printer.NewBufferPrinter()
	svc = NewPrinterService(buf, "buffer", 48, nil)
	assert.True(t, svc.GetStatus().Configured)

	bill, err := svc.TestPrint()
	require.NoError(t, err)
	assert.Equal(t, "TEST-001", bill.Info.Number)
	assert.Len(t, buf.Jobs(), 1)
}

func TestItemColumns(t *testing.T) {
	widths := itemColumns(80)
	total := len(widths) - 1
	for _, w := range widths {
		if w < 0 {
			w = -w
		}
		total += w
	}
	assert.Equal(t, 80, total)

	assert.Equal(t, 4, itemColumns(10)[2])
}
