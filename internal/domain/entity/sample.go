package entity

import "time"

// SampleInvoice builds the seed invoice shown in the preview editor before
// the user has edited anything, and the state ResetToSample restores.
func SampleInvoice() *Invoice {
	return &Invoice{
		ID:            "sample",
		InvoiceNumber: "INV-2026-0001",
		Date:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		BillFrom: InvoiceParty{
			Name:    "Your Company Name",
			Address: "123 Business Street\nCity, State 12345\nCountry",
		},
		BillTo: InvoiceParty{
			Name:    "Customer Name",
			Address: "456 Customer Avenue\nCity, State 67890\nCountry",
		},
		BillingAddress:  "123 Business Street, City, State 12345, Country",
		ShippingAddress: "456 Customer Avenue, City, State 67890, Country",
		LineItems: []LineItem{
			{ID: "1", Description: "Product/Service 1", Quantity: 2, UnitPrice: 100, Total: 200},
			{ID: "2", Description: "Product/Service 2", Quantity: 1, UnitPrice: 150, Total: 150},
			{ID: "3", Description: "Product/Service 3", Quantity: 3, UnitPrice: 50, Total: 150},
		},
		Notes:        "Thank you for your business!\nPayment is due within 30 days.",
		Currency:     "USD",
		Subtotal:     500,
		ShowVAT:      true,
		VATMode:      ModePercentage,
		VATValue:     20,
		TotalVAT:     100,
		ShowDiscount: false,
		DiscountMode: ModePercentage,
		ShowShipping: false,
		GrandTotal:   600,
	}
}
