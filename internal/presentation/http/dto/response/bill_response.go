package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/medbill-api/internal/domain/entity"
)

// SessionResponse describes an open bill session.
type SessionResponse struct {
	ID        uuid.UUID    `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Bill      *entity.Bill `json:"bill"`
}

// ItemResponse is returned after a row changes.
type ItemResponse struct {
	Index  int               `json:"index"`
	Amount float64           `json:"amount"`
	Items  []entity.LineItem `json:"items"`
	Totals entity.Totals     `json:"totals"`
}
