package invoice

import (
	"fmt"
	"time"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
)

// PDFFileName builds the export filename for a rendered invoice:
// <invoiceNumber>_<sanitizedCustomerName>.pdf.
func PDFFileName(inv *entity.Invoice) string {
	return fmt.Sprintf("%s_%s.pdf", inv.InvoiceNumber, sanitize(inv.BillTo.Name))
}

// ArchiveName builds the bulk export archive name: invoices_<ISO-date>.zip.
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("invoices_%s.zip", t.Format("2006-01-02"))
}

// sanitize replaces every non-alphanumeric character with an underscore.
func sanitize(s string) string {
	out := []rune(s)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
