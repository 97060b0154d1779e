package request

// UpdateBillRequest is a partial edit of the bill form. Keys missing from the
// JSON body leave the current value alone.
type UpdateBillRequest struct {
	CustomerName    *string `json:"customerName"`
	CustomerAddress *string `json:"customerAddress"`
	PrescribedBy    *string `json:"prescribedBy"`
	BillNumber      *string `json:"billNumber"`
	BillDate        *string `json:"billDate"`
	BillTime        *string `json:"billTime"`
	CashDiscount    *string `json:"cashDiscount"`
}

// UpdateItemRequest sets one field of a row to the raw text typed in the form.
type UpdateItemRequest struct {
	Field string `json:"field" binding:"required,oneof=qty productName batchNo expiry mrp discount"`
	Value string `json:"value"`
}

// UpdateStoreDetailsRequest maps store field keys to new values.
type UpdateStoreDetailsRequest map[string]string
