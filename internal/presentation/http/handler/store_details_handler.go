package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/application/service"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/request"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/response"
)

// StoreDetailsHandler handles the store identity shown on every bill
type StoreDetailsHandler struct {
	storeService *service.StoreDetailsService
}

// NewStoreDetailsHandler creates a new store details handler
func NewStoreDetailsHandler(storeService *service.StoreDetailsService) *StoreDetailsHandler {
	return &StoreDetailsHandler{storeService: storeService}
}

// Get retrieves the store details
func (h *StoreDetailsHandler) Get(c *gin.Context) {
	details := h.storeService.Current()
	response.OK(c, "Store details retrieved successfully", details.ToMap())
}

// Update edits store fields. The save happens in the background once edits
// go quiet.
func (h *StoreDetailsHandler) Update(c *gin.Context) {
	var req request.UpdateStoreDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	details, err := h.storeService.Edit(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store details updated successfully", details.ToMap())
}

// Save persists the store details immediately
func (h *StoreDetailsHandler) Save(c *gin.Context) {
	h.storeService.SaveNow(c.Request.Context())
	details := h.storeService.Current()
	response.OK(c, "Store details saved", details.ToMap())
}
