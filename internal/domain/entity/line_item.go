package entity

// LineItem represents one billed product row.
type LineItem struct {
	Quantity        float64 `json:"qty"`
	ProductName     string  `json:"productName"`
	BatchNo         string  `json:"batchNo"`
	Expiry          string  `json:"expiry"`
	UnitPrice       float64 `json:"mrp"`
	DiscountPercent float64 `json:"discount"`
}

// Line item field names as they arrive from the bill form.
const (
	FieldQuantity    = "qty"
	FieldProductName = "productName"
	FieldBatchNo     = "batchNo"
	FieldExpiry      = "expiry"
	FieldUnitPrice   = "mrp"
	FieldDiscount    = "discount"
)

// NewLineItem returns an empty row with a quantity of one.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Amount is quantity times MRP. The row's own discount is not applied here;
// it only affects the bill totals.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitPrice
}

// DiscountAmount is the money value of the row's percentage discount.
func (li LineItem) DiscountAmount() float64 {
	return li.Quantity * li.UnitPrice * li.DiscountPercent / 100
}

// IsNumericField reports whether field holds a parsed number.
func IsNumericField(field string) bool {
	switch field {
	case FieldQuantity, FieldUnitPrice, FieldDiscount:
		return true
	}
	return false
}

// IsTextField reports whether field holds free text.
func IsTextField(field string) bool {
	switch field {
	case FieldProductName, FieldBatchNo, FieldExpiry:
		return true
	}
	return false
}

// Totals is the aggregate of a bill, recomputed from its rows on demand.
type Totals struct {
	Subtotal         float64 `json:"subtotal"`
	TotalDiscount    float64 `json:"total_discount"`
	AfterDiscount    float64 `json:"after_discount"`
	CashDiscount     float64 `json:"cash_discount"`
	TotalBeforeRound float64 `json:"total_before_round"`
	RoundOff         float64 `json:"round_off"`
	Total            float64 `json:"total"`
}
