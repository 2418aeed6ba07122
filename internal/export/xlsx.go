package export

import (
	"fmt"
	"strings"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// XLSXWriter builds a spreadsheet summary of a grouped invoice batch:
// one Summary sheet plus a line-item sheet per invoice.
type XLSXWriter struct {
	logger *zap.Logger
}

// NewXLSXWriter creates an XLSX writer.
func NewXLSXWriter(logger *zap.Logger) *XLSXWriter {
	return &XLSXWriter{logger: logger}
}

// SummaryWorkbook renders the batch workbook.
func (w *XLSXWriter) SummaryWorkbook(invoices []*entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	header := []interface{}{
		"Invoice Number", "Customer", "Currency", "Subtotal",
		"VAT", "Discount", "Shipping", "Grand Total",
	}
	if err := f.SetSheetRow(summary, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, inv := range invoices {
		shipping := 0.0
		if inv.ShowShipping {
			shipping = inv.ShippingFee
		}
		row := []interface{}{
			inv.InvoiceNumber,
			inv.BillTo.Name,
			inv.Currency,
			inv.Subtotal,
			inv.TotalVAT,
			inv.TotalDiscount,
			shipping,
			inv.GrandTotal,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}

		if err := w.writeItemSheet(f, inv); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		w.logger.Error("Failed to serialize workbook", zap.Error(err))
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *XLSXWriter) writeItemSheet(f *excelize.File, inv *entity.Invoice) error {
	name := sheetName(inv.InvoiceNumber)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	header := []interface{}{"Description", "Quantity", "Unit Price", "Total"}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write item header: %w", err)
	}
	for i, item := range inv.LineItems {
		row := []interface{}{item.Description, item.Quantity, item.UnitPrice, item.Total}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write item row: %w", err)
		}
	}
	return nil
}

// sheetName makes an invoice number safe as an Excel sheet name: 31 chars
// max, no []:*?/\ characters.
func sheetName(invoiceNumber string) string {
	replacer := strings.NewReplacer("[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_")
	name := replacer.Replace(invoiceNumber)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Invoice"
	}
	return name
}

// WorkbookFileName builds the download name of the batch workbook.
func WorkbookFileName(date string) string {
	return fmt.Sprintf("invoices_%s.xlsx", date)
}
