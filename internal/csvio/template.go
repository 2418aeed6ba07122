package csvio

import (
	"bytes"
	"encoding/csv"
)

// TemplateFileName is the download name of the CSV starter template.
const TemplateFileName = "invoice_template.csv"

var templateSampleRow = []string{
	"Your Company Name",
	"Customer Name",
	"123 Billing St, City, Country",
	"456 Shipping Ave, City, Country",
	"Product/Service Description",
	"1",
	"100.00",
	"20",
	"Thank you for your business!",
}

// Template renders the downloadable CSV starter file: the canonical
// header row plus one example data row, comma-delimited UTF-8.
func Template() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(Columns)
	_ = w.Write(templateSampleRow)
	w.Flush()
	return buf.Bytes()
}
