package csvio

import (
	"strconv"
	"strings"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
)

// Columns is the canonical header row of an uploaded CSV, in order.
// Header matching is case- and whitespace-insensitive.
var Columns = []string{
	"bill from",
	"bill to",
	"billing address",
	"shipping address",
	"item description",
	"item quantity",
	"item price",
	"item VAT",
	"invoice notes",
}

// columnMapping binds one CSV header to a CSVRow field, with an optional
// soft validator. Rows violating a soft validator are flagged but kept;
// rows missing a required field are excluded from aggregation.
type columnMapping struct {
	header   string
	required bool
	validate func(value string) bool
	assign   func(row *entity.CSVRow, value string)
	get      func(row *entity.CSVRow) string
}

func positiveNumber(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f > 0
}

func nonNegativeNumber(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f >= 0
}

var columnMappings = []columnMapping{
	{
		header:   "bill from",
		required: true,
		assign:   func(r *entity.CSVRow, v string) { r.BillFrom = v },
		get:      func(r *entity.CSVRow) string { return r.BillFrom },
	},
	{
		header:   "bill to",
		required: true,
		assign:   func(r *entity.CSVRow, v string) { r.BillTo = v },
		get:      func(r *entity.CSVRow) string { return r.BillTo },
	},
	{
		header:   "billing address",
		required: true,
		assign:   func(r *entity.CSVRow, v string) { r.BillingAddress = v },
		get:      func(r *entity.CSVRow) string { return r.BillingAddress },
	},
	{
		header: "shipping address",
		assign: func(r *entity.CSVRow, v string) { r.ShippingAddress = v },
		get:    func(r *entity.CSVRow) string { return r.ShippingAddress },
	},
	{
		header:   "item description",
		required: true,
		assign:   func(r *entity.CSVRow, v string) { r.ItemDescription = v },
		get:      func(r *entity.CSVRow) string { return r.ItemDescription },
	},
	{
		header:   "item quantity",
		required: true,
		validate: positiveNumber,
		assign:   func(r *entity.CSVRow, v string) { r.ItemQuantity = v },
		get:      func(r *entity.CSVRow) string { return r.ItemQuantity },
	},
	{
		header:   "item price",
		required: true,
		validate: nonNegativeNumber,
		assign:   func(r *entity.CSVRow, v string) { r.ItemPrice = v },
		get:      func(r *entity.CSVRow) string { return r.ItemPrice },
	},
	{
		header:   "item VAT",
		validate: nonNegativeNumber,
		assign:   func(r *entity.CSVRow, v string) { r.ItemVAT = v },
		get:      func(r *entity.CSVRow) string { return r.ItemVAT },
	},
	{
		header: "invoice notes",
		assign: func(r *entity.CSVRow, v string) { r.InvoiceNotes = v },
		get:    func(r *entity.CSVRow) string { return r.InvoiceNotes },
	},
}
