package entity

// CSVRow is one validated input record from an uploaded CSV file.
// Quantity, price and VAT stay as raw strings; numeric coercion happens
// during aggregation so a malformed value degrades to zero instead of
// failing the batch.
type CSVRow struct {
	BillFrom        string `json:"bill_from"`
	BillTo          string `json:"bill_to"`
	BillingAddress  string `json:"billing_address"`
	ShippingAddress string `json:"shipping_address"`
	ItemDescription string `json:"item_description"`
	ItemQuantity    string `json:"item_quantity"`
	ItemPrice       string `json:"item_price"`
	ItemVAT         string `json:"item_vat"`
	InvoiceNotes    string `json:"invoice_notes"`
}

// RowErrorKind classifies a row-level validation failure.
type RowErrorKind string

const (
	ErrKindMissingFields RowErrorKind = "missing_fields"
	ErrKindInvalidValue  RowErrorKind = "invalid_value"
	ErrKindFileError     RowErrorKind = "file_error"
)

// RowError is a non-fatal validation error tagged with the 1-based file
// row number it originated from. Row 0 means the error applies to the
// whole file.
type RowError struct {
	Row     int          `json:"row"`
	Kind    RowErrorKind `json:"kind"`
	Message string       `json:"message"`
}
