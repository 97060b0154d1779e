package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/pkg/apperror"
	"github.com/sangkips/medbill-api/pkg/debounce"
)

// BillSession is one bill being edited. It owns the ordered rows; row order is
// bill order and decides the serial numbers.
type BillSession struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu           sync.Mutex
	items        []entity.LineItem
	customer     entity.CustomerFields
	meta         entity.BillMeta
	cashDiscount string
	preview      *entity.Bill

	store     func() entity.StoreDetails
	previewer *debounce.Debouncer
	onPreview func()
}

// SessionUpdate carries a partial edit of the bill form. Nil fields are left
// untouched.
type SessionUpdate struct {
	CustomerName    *string
	CustomerAddress *string
	PrescribedBy    *string
	BillNumber      *string
	BillDate        *string
	BillTime        *string
	CashDiscount    *string
}

func newBillSession(now time.Time, window time.Duration, store func() entity.StoreDetails, onPreview func()) *BillSession {
	s := &BillSession{
		ID:        uuid.New(),
		CreatedAt: now,
		meta: entity.BillMeta{
			Date: now.Format("2006-01-02"),
			Time: now.Format("15:04"),
		},
		store:     store,
		onPreview: onPreview,
	}
	s.previewer = debounce.New(window, s.refreshPreview)
	return s
}

// AddItem appends a row with default values.
func (s *BillSession) AddItem() int {
	s.mu.Lock()
	s.items = append(s.items, entity.NewLineItem())
	n := len(s.items)
	s.mu.Unlock()

	s.previewer.Trigger()
	return n - 1
}

// RemoveItem deletes the row at index. It reports false, and changes nothing,
// when index is out of range.
func (s *BillSession) RemoveItem(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.mu.Unlock()

	s.previewer.Trigger()
	return true
}

// UpdateField sets one field of a row from raw form input and returns the
// row's new amount. Numeric fields go through ParseAmount; text fields are
// kept exactly as typed.
func (s *BillSession) UpdateField(index int, field, raw string) (float64, error) {
	if !entity.IsNumericField(field) && !entity.IsTextField(field) {
		return 0, apperror.UnknownItemField(field)
	}

	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return 0, apperror.ErrItemNotFound
	}
	item := &s.items[index]
	switch field {
	case entity.FieldQuantity:
		item.Quantity = ParseAmount(raw)
	case entity.FieldUnitPrice:
		item.UnitPrice = ParseAmount(raw)
	case entity.FieldDiscount:
		item.DiscountPercent = ParseAmount(raw)
	case entity.FieldProductName:
		item.ProductName = raw
	case entity.FieldBatchNo:
		item.BatchNo = raw
	case entity.FieldExpiry:
		item.Expiry = raw
	}
	amount := item.Amount()
	s.mu.Unlock()

	s.previewer.Trigger()
	return amount, nil
}

// Update applies a partial form edit.
func (s *BillSession) Update(u SessionUpdate) {
	s.mu.Lock()
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.customer.Name, u.CustomerName)
	set(&s.customer.Address, u.CustomerAddress)
	set(&s.customer.PrescribedBy, u.PrescribedBy)
	set(&s.meta.Number, u.BillNumber)
	set(&s.meta.Date, u.BillDate)
	set(&s.meta.Time, u.BillTime)
	set(&s.cashDiscount, u.CashDiscount)
	s.mu.Unlock()

	s.previewer.Trigger()
}

// Items returns a copy of the rows.
func (s *BillSession) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals recomputes the aggregate figures from the current rows.
func (s *BillSession) Totals() entity.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.items, parseLeadingFloat(s.cashDiscount))
}

// Bill assembles the document from the current state.
func (s *BillSession) Bill() *entity.Bill {
	store := s.store()

	s.mu.Lock()
	defer s.mu.Unlock()
	totals := ComputeTotals(s.items, parseLeadingFloat(s.cashDiscount))
	return AssembleBill(store, s.customer, s.items, totals, s.meta)
}

// Preview returns the last debounced document, assembling one if no preview
// has been computed yet.
func (s *BillSession) Preview() *entity.Bill {
	s.mu.Lock()
	p := s.preview
	s.mu.Unlock()
	if p != nil {
		return p
	}
	return s.Bill()
}

// FlushPreview recomputes the preview now if an edit is pending, otherwise it
// just makes sure a preview exists.
func (s *BillSession) FlushPreview() {
	if s.previewer.Flush() {
		return
	}
	s.mu.Lock()
	missing := s.preview == nil
	s.mu.Unlock()
	if missing {
		s.refreshPreview()
	}
}

// PreviewPending reports whether an edit is waiting for the quiet window.
func (s *BillSession) PreviewPending() bool {
	return s.previewer.Pending()
}

func (s *BillSession) close() {
	s.previewer.Stop()
}

func (s *BillSession) refreshPreview() {
	b := s.Bill()
	s.mu.Lock()
	s.preview = b
	s.mu.Unlock()
	if s.onPreview != nil {
		s.onPreview()
	}
}
