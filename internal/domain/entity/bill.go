package entity

// CustomerFields are the recipient inputs of a bill.
type CustomerFields struct {
	Name         string `json:"customerName"`
	Address      string `json:"customerAddress"`
	PrescribedBy string `json:"prescribedBy"`
}

// BillMeta identifies a bill. Date is ISO (YYYY-MM-DD) and Time is HH:MM,
// as typed into the form.
type BillMeta struct {
	Number string `json:"billNumber"`
	Date   string `json:"billDate"`
	Time   string `json:"billTime"`
}

// BillHeader holds the store identity printed at the top of a bill.
type BillHeader struct {
	StoreName    string   `json:"store_name"`
	AddressLines []string `json:"address_lines"`
	Subtitle     string   `json:"subtitle"`
	LicenseLine  string   `json:"license_line"`
	TaxLine      string   `json:"tax_line,omitempty"`
}

// BillRecipient is the "TO:" block.
type BillRecipient struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines"`
	PrescribedBy string   `json:"prescribed_by"`
}

// BillInfo is the right-hand metadata block.
type BillInfo struct {
	Number string `json:"bill_no"`
	Date   string `json:"bill_date"`
	Time   string `json:"bill_time"`
}

// BillRow is one row of the item table. Display strings are preformatted so
// every renderer prints identical text.
type BillRow struct {
	Serial          int     `json:"serial"`
	Quantity        float64 `json:"qty"`
	ProductName     string  `json:"product_name"`
	BatchNo         string  `json:"batch_no"`
	Expiry          string  `json:"expiry"`
	UnitPrice       float64 `json:"mrp"`
	DiscountPercent float64 `json:"discount_percent"`
	Amount          float64 `json:"amount"`

	QuantityText string `json:"qty_text"`
	PriceText    string `json:"mrp_text"`
	DiscountText string `json:"discount_text"`
	AmountText   string `json:"amount_text"`
}

// BillTotals is the totals block.
type BillTotals struct {
	Totals

	SubtotalText      string `json:"subtotal_text"`
	DiscountText      string `json:"discount_text"`
	AfterDiscountText string `json:"after_discount_text"`
	CashDiscountText  string `json:"cash_discount_text"`
	RoundOffText      string `json:"round_off_text"`
	PayableText       string `json:"payable_text"`
	AmountInWords     string `json:"amount_in_words"`
}

// BillFooter closes the bill.
type BillFooter struct {
	JurisdictionLine string `json:"jurisdiction_line"`
	TaxNote          string `json:"tax_note"`
	IssuedBy         string `json:"issued_by"`
}

// Bill is a renderable bill document. It is NOT a database entity; it is
// assembled from the session inputs every time it is shown or printed.
type Bill struct {
	Header    BillHeader    `json:"header"`
	Recipient BillRecipient `json:"recipient"`
	Info      BillInfo      `json:"info"`
	Items     []BillRow     `json:"items"`
	Totals    BillTotals    `json:"totals"`
	Footer    BillFooter    `json:"footer"`

	// Raw inputs kept for print file naming.
	CustomerName string `json:"-"`
	RawDate      string `json:"-"`
	RawTime      string `json:"-"`
}
