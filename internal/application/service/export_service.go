package service

import (
	"fmt"
	"io"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

var exportColumns = []string{"S.N", "QTY", "PRODUCT", "BATCH NO", "EXP", "MRP", "DISC %", "AMOUNT"}

// ExportXLSX writes the bill as a single-sheet workbook: header lines, the
// item table with numeric cells, then the totals block.
func ExportXLSX(b *entity.Bill, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	row := 1
	put := func(col int, value interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(exportSheet, cell, value)
	}
	line := func(values ...interface{}) error {
		for i, v := range values {
			if err := put(i+1, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	header := []string{b.Header.StoreName}
	header = append(header, b.Header.AddressLines...)
	header = append(header, b.Header.Subtitle, b.Header.LicenseLine)
	if b.Header.TaxLine != "" {
		header = append(header, b.Header.TaxLine)
	}
	for _, h := range header {
		if err := line(h); err != nil {
			return fmt.Errorf("export header: %w", err)
		}
	}
	row++

	info := [][2]string{
		{"TO:", b.Recipient.Name},
		{"PRES. BY:", b.Recipient.PrescribedBy},
		{"BILL NO.:", b.Info.Number},
		{"BILL DATE:", b.Info.Date},
		{"BILL TIME:", b.Info.Time},
	}
	for _, kv := range info {
		if err := line(kv[0], kv[1]); err != nil {
			return fmt.Errorf("export info: %w", err)
		}
	}
	row++

	cols := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		cols[i] = c
	}
	if err := line(cols...); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	for _, r := range b.Items {
		if err := line(r.Serial, r.Quantity, r.ProductName, r.BatchNo, r.Expiry, r.UnitPrice, r.DiscountPercent, r.Amount); err != nil {
			return fmt.Errorf("export items: %w", err)
		}
	}
	row++

	t := b.Totals
	totals := []struct {
		label string
		value float64
	}{
		{"SUBTOTAL:", t.Subtotal},
		{"DISCOUNT:", t.TotalDiscount},
		{"AFTER DISCOUNT:", t.AfterDiscount},
		{"CASH DISC:", t.CashDiscount},
		{"ROUND OFF:", t.RoundOff},
		{"PLEASE PAY:", t.Total},
	}
	for _, kv := range totals {
		if err := line(kv.label, kv.value); err != nil {
			return fmt.Errorf("export totals: %w", err)
		}
	}
	if err := line(t.AmountInWords); err != nil {
		return fmt.Errorf("export totals: %w", err)
	}

	return f.Write(w)
}
