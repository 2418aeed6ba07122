package export

import (
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/internal/invoice"
	"go.uber.org/zap"
)

// ProgressFunc reports bulk export progress after each invoice.
type ProgressFunc func(done, total int)

// BulkExporter renders a batch of invoices to PDF. Invoices are processed
// strictly one at a time to bound peak memory from rasterization; a
// per-invoice render failure is logged and skipped without corrupting the
// batch.
type BulkExporter struct {
	renderer *PDFRenderer
	logger   *zap.Logger
}

// NewBulkExporter creates a bulk exporter.
func NewBulkExporter(renderer *PDFRenderer, logger *zap.Logger) *BulkExporter {
	return &BulkExporter{renderer: renderer, logger: logger}
}

// ExportPDFs renders every invoice with the given template and returns
// the resulting named PDF files in input order.
func (b *BulkExporter) ExportPDFs(invoices []*entity.Invoice, tpl *entity.TemplateConfig, progress ProgressFunc) []File {
	files := make([]File, 0, len(invoices))
	total := len(invoices)

	for i, inv := range invoices {
		data, err := b.renderer.Render(inv, tpl)
		if err != nil {
			b.logger.Error("Failed to render invoice in bulk export, skipping",
				zap.String("invoice_number", inv.InvoiceNumber),
				zap.Error(err))
		} else {
			files = append(files, File{Name: invoice.PDFFileName(inv), Data: data})
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
	return files
}
