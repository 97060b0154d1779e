package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/pkg/metrics"
	"github.com/sangkips/medbill-api/pkg/printer"
)

// PrinterService renders bills for paper: an HTML print document for the
// browser and ESC/POS bytes for a thermal printer.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	width       int
	metrics     *metrics.Registry

	// Now supplies the fallback date and time for print titles.
	Now func() time.Time
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, width int, m *metrics.Registry) *PrinterService {
	if width <= 0 {
		width = 48
	}
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		width:       width,
		metrics:     m,
		Now:         time.Now,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
		Width:      s.width,
	}
}

// TestPrint sends a sample bill to the printer.
// Returns the bill so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Bill, error) {
	items := []entity.LineItem{
		{Quantity: 3, ProductName: "TELMA", BatchNo: "18240211", Expiry: "Feb-27", UnitPrice: 227.14},
	}
	bill := AssembleBill(
		entity.StoreDetails{StoreName: "PRINTER TEST", StoreAddress: "Test Address", DLNumber: "TEST-DL"},
		entity.CustomerFields{Name: "Test Customer"},
		items,
		ComputeTotals(items, 0),
		entity.BillMeta{Number: "TEST-001", Date: s.Now().Format("2006-01-02"), Time: s.Now().Format("15:04")},
	)

	if err := s.printer.Print(s.FormatBill(bill)); err != nil {
		return bill, fmt.Errorf("test print failed: %w", err)
	}
	s.countPrint("test")
	return bill, nil
}

// PrintBill sends the bill to the thermal printer.
func (s *PrinterService) PrintBill(bill *entity.Bill) error {
	if err := s.printer.Print(s.FormatBill(bill)); err != nil {
		log.Printf("Printer error (bill %s): %v", bill.Info.Number, err)
		return fmt.Errorf("failed to print bill: %w", err)
	}
	s.countPrint("thermal")
	return nil
}

// FormatBill converts a Bill into ESC/POS bytes.
func (s *PrinterService) FormatBill(b *entity.Bill) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(b.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	for _, line := range b.Header.AddressLines {
		doc.Text(line)
	}
	if b.Header.Subtitle != "" {
		doc.Text(b.Header.Subtitle)
	}
	doc.Text(b.Header.LicenseLine)
	if b.Header.TaxLine != "" {
		doc.Text(b.Header.TaxLine)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('=')

	// Recipient and bill info
	doc.KeyValue("TO:", b.Recipient.Name)
	for _, line := range b.Recipient.AddressLines {
		doc.Text(line)
	}
	if b.Recipient.PrescribedBy != "" {
		doc.KeyValue("PRES. BY:", b.Recipient.PrescribedBy)
	}
	doc.KeyValue("BILL NO.:", b.Info.Number).
		KeyValue("BILL DATE:", b.Info.Date).
		KeyValue("BILL TIME:", b.Info.Time).
		Separator('-')

	// Items
	if s.width >= wideTableWidth {
		widths := itemColumns(s.width)
		doc.SetBold(true).
			Columns(widths, "SN", "QTY", "PRODUCT", "BATCH", "EXP", "MRP", "DISC", "AMOUNT").
			SetBold(false)
		for _, row := range b.Items {
			doc.Columns(widths,
				fmt.Sprint(row.Serial), row.QuantityText, row.ProductName, row.BatchNo,
				row.Expiry, row.PriceText, row.DiscountText, row.AmountText)
		}
	} else {
		for _, row := range b.Items {
			doc.ItemLine(row.Serial, row.QuantityText, row.ProductName, row.AmountText)
			doc.TextF("   %s %s @ %s -%s", row.BatchNo, row.Expiry, row.PriceText, row.DiscountText)
		}
	}

	doc.Separator('-')

	// Totals
	t := b.Totals
	doc.KeyValue("SUBTOTAL:", t.SubtotalText).
		KeyValue("DISCOUNT:", t.DiscountText).
		KeyValue("AFTER DISCOUNT:", t.AfterDiscountText).
		KeyValue("CASH DISC:", t.CashDiscountText).
		KeyValue("ROUND OFF:", t.RoundOffText).
		SetBold(true).
		// Thermal code pages have no rupee sign.
		KeyValue("PLEASE PAY:", "Rs. "+strings.TrimPrefix(t.PayableText, "₹")).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(t.AmountInWords).
		SetBold(false).
		LineFeed()

	// Footer
	doc.Text(b.Footer.JurisdictionLine).
		Text(b.Footer.TaxNote).
		LineFeed().
		SetAlign(printer.AlignRight).
		Text(b.Footer.IssuedBy).
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// wideTableWidth is the narrowest paper that fits the full item table.
const wideTableWidth = 64

// itemColumns splits the paper width across the item table; the product
// column absorbs what is left. Negative widths are right aligned.
func itemColumns(width int) []int {
	fixed := []int{2, -3, 0, 8, 6, -7, -5, -8}
	used := len(fixed) - 1 // separators
	for _, w := range fixed {
		if w < 0 {
			used -= w
		} else {
			used += w
		}
	}
	product := width - used
	if product < 4 {
		product = 4
	}
	fixed[2] = product
	return fixed
}

// PrintDocument is a standalone, self-styled HTML page for the browser's
// print dialog.
type PrintDocument struct {
	Title string
	HTML  []byte
}

// RenderHTML builds the print document for b.
func (s *PrinterService) RenderHTML(b *entity.Bill) (*PrintDocument, error) {
	title := printer.FileTitle(b.CustomerName, b.RawTime, b.RawDate, s.Now())

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, struct {
		Title string
		Bill  *entity.Bill
	}{title, b}); err != nil {
		return nil, fmt.Errorf("render print document: %w", err)
	}
	s.countPrint("html")
	return &PrintDocument{Title: title, HTML: buf.Bytes()}, nil
}

func (s *PrinterService) countPrint(kind string) {
	if s.metrics != nil {
		s.metrics.Prints.WithLabelValues(kind).Inc()
	}
}

var printTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Courier New', monospace; margin: 0; padding: 20px; font-size: 12px; line-height: 1.4; }
.bill-preview { background: white; }
.items-table { width: 100%; border-collapse: collapse; margin: 15px 0; }
.items-table th, .items-table td { border: 1px solid #000; padding: 6px 4px; font-size: 11px; }
.items-table th { background: #f0f0f0; text-align: center; font-weight: bold; }
.number-col { text-align: right; }
.center-col { text-align: center; }
.bill-header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 15px; margin-bottom: 20px; }
.store-name { font-size: 18px; font-weight: bold; margin-bottom: 5px; }
.store-address { font-size: 11px; margin-bottom: 3px; }
.bill-info { display: flex; justify-content: space-between; margin: 20px 0; padding: 10px 0; border-bottom: 1px solid #ccc; }
.bill-total { margin-top: 20px; text-align: right; border-top: 2px solid #000; padding-top: 15px; }
.total-line { display: flex; justify-content: space-between; margin: 5px 0; padding: 0 20px; }
.total-line.payable { border-top: 2px solid #000; padding-top: 10px; font-size: 14px; }
.amount-words { text-align: center; margin: 20px 0; font-weight: bold; }
.bill-footer { margin-top: 30px; text-align: center; font-size: 10px; border-top: 1px solid #ccc; padding-top: 15px; }
.issued-by { text-align: right; margin-top: 20px; }
@media print {
  @page { margin: 0; size: auto; }
  body { margin: 0; padding: 0; }
  .bill-preview { box-shadow: none; margin: 0; padding: 20px; }
}
</style>
</head>
<body>
<div class="bill-preview">
{{with .Bill}}
<div class="bill-header">
  <div class="store-name">{{.Header.StoreName}}</div>
  <div class="store-address">{{range $i, $l := .Header.AddressLines}}{{if $i}}<br>{{end}}{{$l}}{{end}}</div>
  <div class="store-address">{{.Header.Subtitle}}</div>
  <div class="store-address">{{.Header.LicenseLine}}</div>
  {{if .Header.TaxLine}}<div class="store-address">{{.Header.TaxLine}}</div>{{end}}
</div>
<div class="bill-info">
  <div>
    <strong>TO:</strong><br>
    {{.Recipient.Name}}<br>
    {{range $i, $l := .Recipient.AddressLines}}{{if $i}}<br>{{end}}{{$l}}{{end}}
    <br><br>
    <strong>PRES. BY:</strong> {{.Recipient.PrescribedBy}}
  </div>
  <div style="text-align: right;">
    <strong>BILL NO.:</strong> {{.Info.Number}}<br>
    <strong>BILL DATE:</strong> {{.Info.Date}}<br>
    <strong>BILL TIME:</strong> {{.Info.Time}}
  </div>
</div>
<table class="items-table">
  <thead>
    <tr><th>S.N</th><th>QTY</th><th>PRODUCT</th><th>BATCH NO</th><th>EXP</th><th>MRP</th><th>DISC %</th><th>AMOUNT</th></tr>
  </thead>
  <tbody>
  {{range .Items}}
    <tr>
      <td class="center-col">{{.Serial}}</td>
      <td class="number-col">{{.QuantityText}}</td>
      <td>{{.ProductName}}</td>
      <td class="center-col">{{.BatchNo}}</td>
      <td class="center-col">{{.Expiry}}</td>
      <td class="number-col">{{.PriceText}}</td>
      <td class="number-col">{{.DiscountText}}</td>
      <td class="number-col">{{.AmountText}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
<div class="bill-total">
  <div class="total-line"><span><strong>SUBTOTAL:</strong></span><span><strong>{{.Totals.SubtotalText}}</strong></span></div>
  <div class="total-line"><span><strong>DISCOUNT:</strong></span><span><strong>{{.Totals.DiscountText}}</strong></span></div>
  <div class="total-line"><span><strong>AFTER DISCOUNT:</strong></span><span><strong>{{.Totals.AfterDiscountText}}</strong></span></div>
  <div class="total-line"><span><strong>CASH DISC:</strong></span><span><strong>{{.Totals.CashDiscountText}}</strong></span></div>
  <div class="total-line"><span><strong>ROUND OFF:</strong></span><span><strong>{{.Totals.RoundOffText}}</strong></span></div>
  <div class="total-line payable"><span><strong>PLEASE PAY:</strong></span><span><strong>{{.Totals.PayableText}}</strong></span></div>
</div>
<div class="amount-words">{{.Totals.AmountInWords}}</div>
<div class="bill-footer">
  {{.Footer.JurisdictionLine}}<br>
  {{.Footer.TaxNote}}<br><br>
  <div class="issued-by">{{.Footer.IssuedBy}}</div>
</div>
{{end}}
</div>
<script>
document.title = {{.Title}};
window.onload = function() { window.print(); window.onafterprint = window.close; };
</script>
</body>
</html>
`))
