package handler

import (
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/application/service"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/response"
	"github.com/sangkips/medbill-api/pkg/printer"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
	billService    *service.BillService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService, billService *service.BillService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService, billService: billService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	bill, err := h.printerService.TestPrint()
	if err != nil {
		// Return the bill anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"bill":    bill,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"bill": bill,
	})
}

// PrintHTML returns the standalone print document for a bill.
func (h *PrinterHandler) PrintHTML(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	doc, err := h.printerService.RenderHTML(session.Bill())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Document(c, "inline", doc.Title+".html", "text/html; charset=utf-8", doc.HTML)
}

// PrintThermal sends a bill to the thermal printer.
func (h *PrinterHandler) PrintThermal(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	bill := session.Bill()
	if err := h.printerService.PrintBill(bill); err != nil {
		// The bill was built, only the printer failed
		response.OK(c, "Bill generated but printing failed", gin.H{
			"bill":    bill,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Bill printed successfully", gin.H{
		"bill": bill,
	})
}

// ExportXLSX downloads a bill as a spreadsheet.
func (h *PrinterHandler) ExportXLSX(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	bill := session.Bill()
	var buf bytes.Buffer
	if err := service.ExportXLSX(bill, &buf); err != nil {
		response.Error(c, fmt.Errorf("failed to export bill: %w", err))
		return
	}

	title := printer.FileTitle(bill.CustomerName, bill.RawTime, bill.RawDate, h.printerService.Now())
	response.Document(c, "attachment", title+".xlsx", xlsxContentType, buf.Bytes())
}
