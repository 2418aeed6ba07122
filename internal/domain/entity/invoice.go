package entity

import "time"

// AmountMode controls how a VAT or discount value is interpreted:
// as a percentage of its base amount or as a flat currency amount.
type AmountMode string

const (
	ModePercentage AmountMode = "percentage"
	ModeAmount     AmountMode = "amount"
)

// LineItem represents one purchased product or service entry.
// Total is always Quantity * UnitPrice and is recomputed on every mutation.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// InvoiceParty identifies one side of an invoice (biller or customer).
type InvoiceParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Invoice is the aggregate of line items, header fields and derived
// monetary totals for a single customer.
//
// Subtotal, TotalVAT, TotalDiscount and GrandTotal are a pure function of
// the line items plus the VAT/discount/shipping configuration; they are
// never edited independently.
type Invoice struct {
	ID              string       `json:"id"`
	InvoiceNumber   string       `json:"invoice_number"`
	Date            time.Time    `json:"date"`
	DueDate         *time.Time   `json:"due_date,omitempty"`
	BillFrom        InvoiceParty `json:"bill_from"`
	BillTo          InvoiceParty `json:"bill_to"`
	BillingAddress  string       `json:"billing_address"`
	ShippingAddress string       `json:"shipping_address"`
	LineItems       []LineItem   `json:"line_items"`
	Notes           string       `json:"notes"`
	Currency        string       `json:"currency"`

	Subtotal float64 `json:"subtotal"`

	ShowVAT  bool       `json:"show_vat"`
	VATMode  AmountMode `json:"vat_mode"`
	VATValue float64    `json:"vat_value"`
	TotalVAT float64    `json:"total_vat"`

	ShowDiscount  bool       `json:"show_discount"`
	DiscountMode  AmountMode `json:"discount_mode"`
	DiscountValue float64    `json:"discount_value"`
	TotalDiscount float64    `json:"total_discount"`

	ShowShipping bool    `json:"show_shipping"`
	ShippingFee  float64 `json:"shipping_fee"`

	GrandTotal float64 `json:"grand_total"`
}

// Clone returns a deep copy of the invoice. Stores hand out clones so
// callers can never mutate owned state directly.
func (i *Invoice) Clone() *Invoice {
	c := *i
	if i.DueDate != nil {
		d := *i.DueDate
		c.DueDate = &d
	}
	c.LineItems = make([]LineItem, len(i.LineItems))
	copy(c.LineItems, i.LineItems)
	return &c
}

// FindLineItem returns a pointer to the line item with the given ID,
// or nil if it is not part of the invoice.
func (i *Invoice) FindLineItem(itemID string) *LineItem {
	for idx := range i.LineItems {
		if i.LineItems[idx].ID == itemID {
			return &i.LineItems[idx]
		}
	}
	return nil
}
