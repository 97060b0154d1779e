package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/medbill-api/internal/application/service"
	"github.com/sangkips/medbill-api/internal/presentation/http/dto/response"
	"github.com/sangkips/medbill-api/pkg/apperror"
)

// getSession resolves the :id path parameter to an open bill session. It
// writes the error response itself and returns nil when that fails.
func getSession(c *gin.Context, bills *service.BillService) *service.BillSession {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrBadBillID)
		return nil
	}
	session, err := bills.Get(id)
	if err != nil {
		response.Error(c, err)
		return nil
	}
	return session
}

// getIndex parses the :index path parameter.
func getIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, apperror.ErrBadItemIndex)
		return 0, false
	}
	return index, true
}
