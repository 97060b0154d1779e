package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/application/service"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/request"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/response"
	"github.com/sangkips/medbill-api/pkg/apperror"
)

// BillHandler handles the bill editor HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create opens a new bill session
func (h *BillHandler) Create(c *gin.Context) {
	session := h.billService.Create()
	response.Created(c, "Bill created successfully", response.SessionResponse{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		Bill:      session.Bill(),
	})
}

// Get returns the bill assembled from the current form state
func (h *BillHandler) Get(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	response.OK(c, "Bill retrieved successfully", response.SessionResponse{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		Bill:      session.Bill(),
	})
}

// Update applies customer, bill info and cash discount edits
func (h *BillHandler) Update(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	var req request.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Update(service.SessionUpdate{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		PrescribedBy:    req.PrescribedBy,
		BillNumber:      req.BillNumber,
		BillDate:        req.BillDate,
		BillTime:        req.BillTime,
		CashDiscount:    req.CashDiscount,
	})

	response.OK(c, "Bill updated successfully", session.Totals())
}

// Delete discards a bill session
func (h *BillHandler) Delete(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}
	if err := h.billService.Delete(session.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddItem appends a row with default values
func (h *BillHandler) AddItem(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	index := session.AddItem()
	items := session.Items()
	response.Created(c, "Item added successfully", response.ItemResponse{
		Index:  index,
		Amount: items[index].Amount(),
		Items:  items,
		Totals: session.Totals(),
	})
}

// UpdateItem sets one field of a row
func (h *BillHandler) UpdateItem(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}
	index, ok := getIndex(c)
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	amount, err := session.UpdateField(index, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", response.ItemResponse{
		Index:  index,
		Amount: amount,
		Items:  session.Items(),
		Totals: session.Totals(),
	})
}

// RemoveItem deletes a row
func (h *BillHandler) RemoveItem(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}
	index, ok := getIndex(c)
	if !ok {
		return
	}

	if !session.RemoveItem(index) {
		response.Error(c, apperror.ErrItemNotFound)
		return
	}

	response.OK(c, "Item removed successfully", response.ItemResponse{
		Index:  index,
		Items:  session.Items(),
		Totals: session.Totals(),
	})
}

// Preview returns the debounced live preview
func (h *BillHandler) Preview(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	c.Header("X-Preview-Pending", strconv.FormatBool(session.PreviewPending()))
	response.OK(c, "Preview retrieved successfully", session.Preview())
}

// Generate finalizes the preview and saves the store details
func (h *BillHandler) Generate(c *gin.Context) {
	session := getSession(c, h.billService)
	if session == nil {
		return
	}

	bill, err := h.billService.Generate(c.Request.Context(), session.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill generated successfully", bill)
}
