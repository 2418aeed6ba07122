package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/internal/invoice"
	"go.uber.org/zap"
)

// canvasWidthPx is the template canvas width; positions are stored in
// canvas pixels and scaled onto a 210mm A4 page.
const canvasWidthPx = 794.0

const pxToMM = 210.0 / canvasWidthPx

// PDFRenderer draws invoices onto A4 pages following the template
// configuration: field visibility, positions, global colors and fonts.
type PDFRenderer struct {
	logger *zap.Logger
}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// Render produces the PDF document for one invoice.
func (r *PDFRenderer) Render(inv *entity.Invoice, tpl *entity.TemplateConfig) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if rr, g, b, ok := hexToRGB(tpl.GlobalStyles.Background); ok && (rr != 255 || g != 255 || b != 255) {
		pdf.SetFillColor(rr, g, b)
		pdf.Rect(0, 0, 210, 297, "F")
	}

	for _, fc := range visibleFields(tpl) {
		switch fc.Type {
		case entity.FieldLogo:
			r.drawLogo(pdf, tpl, fc)
		case entity.FieldInvoiceNumber:
			r.drawText(pdf, tr, tpl, fc, inv.InvoiceNumber)
		case entity.FieldInvoiceDate:
			r.drawText(pdf, tr, tpl, fc, inv.Date.Format("2006-01-02"))
		case entity.FieldBillFrom:
			r.drawLabeled(pdf, tr, tpl, fc, inv.BillFrom.Name+"\n"+inv.BillFrom.Address)
		case entity.FieldBillTo:
			r.drawLabeled(pdf, tr, tpl, fc, inv.BillTo.Name+"\n"+inv.BillTo.Address)
		case entity.FieldBillingAddress:
			r.drawLabeled(pdf, tr, tpl, fc, inv.BillingAddress)
		case entity.FieldShippingAddress:
			r.drawLabeled(pdf, tr, tpl, fc, inv.ShippingAddress)
		case entity.FieldLineItems:
			r.drawLineItems(pdf, tr, tpl, fc, inv)
		case entity.FieldNotes:
			r.drawLabeled(pdf, tr, tpl, fc, inv.Notes)
		case entity.FieldTotals:
			r.drawTotals(pdf, tr, tpl, fc, inv)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("Failed to render invoice PDF",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Error(err))
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// visibleFields returns the visible field configs ordered by z-index,
// falling back to canonical field order for equal z.
func visibleFields(tpl *entity.TemplateConfig) []entity.FieldConfig {
	rank := make(map[entity.FieldType]int, len(entity.AllFieldTypes))
	for i, ft := range entity.AllFieldTypes {
		rank[ft] = i
	}

	fields := make([]entity.FieldConfig, 0, len(tpl.Fields))
	for _, ft := range entity.AllFieldTypes {
		fc, ok := tpl.Fields[ft]
		if ok && fc.Visible {
			fields = append(fields, fc)
		}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Position.ZIndex != fields[j].Position.ZIndex {
			return fields[i].Position.ZIndex < fields[j].Position.ZIndex
		}
		return rank[fields[i].Type] < rank[fields[j].Type]
	})
	return fields
}

func (r *PDFRenderer) applyStyle(pdf *gofpdf.Fpdf, tpl *entity.TemplateConfig, style entity.FieldStyle, bold bool) {
	family := fontFamily(style.FontFamily, tpl.GlobalStyles.FontFamily)
	weight := ""
	if bold || style.FontWeight == "bold" {
		weight = "B"
	}
	size := style.FontSize
	if size <= 0 {
		size = 12
	}
	pdf.SetFont(family, weight, size*0.75) // css px to pt

	if rr, g, b, ok := hexToRGB(style.Color); ok {
		pdf.SetTextColor(rr, g, b)
	} else {
		pdf.SetTextColor(31, 41, 55)
	}
}

func (r *PDFRenderer) drawText(pdf *gofpdf.Fpdf, tr func(string) string, tpl *entity.TemplateConfig, fc entity.FieldConfig, text string) {
	r.applyStyle(pdf, tpl, fc.Style, false)
	pos := fc.Position
	pdf.SetXY(pos.X*pxToMM, pos.Y*pxToMM)
	pdf.MultiCell(pos.Width*pxToMM, 5, tr(text), "", alignCode(fc.Style.TextAlign), false)
}

// drawLabeled renders the field label in the primary color above the body.
func (r *PDFRenderer) drawLabeled(pdf *gofpdf.Fpdf, tr func(string) string, tpl *entity.TemplateConfig, fc entity.FieldConfig, text string) {
	pos := fc.Position
	x, y := pos.X*pxToMM, pos.Y*pxToMM

	r.applyStyle(pdf, tpl, fc.Style, true)
	if rr, g, b, ok := hexToRGB(tpl.GlobalStyles.PrimaryColor); ok {
		pdf.SetTextColor(rr, g, b)
	}
	pdf.SetXY(x, y)
	pdf.CellFormat(pos.Width*pxToMM, 5, tr(fc.Label), "", 2, alignCode(fc.Style.TextAlign), false, 0, "")

	r.applyStyle(pdf, tpl, fc.Style, false)
	pdf.SetX(x)
	pdf.MultiCell(pos.Width*pxToMM, 5, tr(text), "", alignCode(fc.Style.TextAlign), false)
}

func (r *PDFRenderer) drawLogo(pdf *gofpdf.Fpdf, tpl *entity.TemplateConfig, fc entity.FieldConfig) {
	path := tpl.Logo.Path
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		r.logger.Warn("Logo file missing, skipping", zap.String("path", path))
		return
	}
	pos := fc.Position
	w := pos.Width
	if tpl.Logo.MaxWidth > 0 && w > tpl.Logo.MaxWidth {
		w = tpl.Logo.MaxWidth
	}
	h := pos.Height
	if tpl.Logo.MaxHeight > 0 && h > tpl.Logo.MaxHeight {
		h = tpl.Logo.MaxHeight
	}
	pdf.ImageOptions(path, pos.X*pxToMM, pos.Y*pxToMM, w*pxToMM, h*pxToMM,
		false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
}

func (r *PDFRenderer) drawLineItems(pdf *gofpdf.Fpdf, tr func(string) string, tpl *entity.TemplateConfig, fc entity.FieldConfig, inv *entity.Invoice) {
	pos := fc.Position
	x := pos.X * pxToMM
	width := pos.Width * pxToMM

	descW := width * 0.5
	qtyW := width * 0.12
	priceW := width * 0.19
	totalW := width - descW - qtyW - priceW

	r.applyStyle(pdf, tpl, fc.Style, true)
	if rr, g, b, ok := hexToRGB(tpl.GlobalStyles.PrimaryColor); ok {
		pdf.SetFillColor(rr, g, b)
	} else {
		pdf.SetFillColor(26, 86, 219)
	}
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(x, pos.Y*pxToMM)
	pdf.CellFormat(descW, 7, tr("Description"), "", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, tr("Qty"), "", 0, "R", true, 0, "")
	pdf.CellFormat(priceW, 7, tr("Unit Price"), "", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, 7, tr("Total"), "", 1, "R", true, 0, "")

	r.applyStyle(pdf, tpl, fc.Style, false)
	pdf.SetFillColor(243, 244, 246)
	for i, item := range inv.LineItems {
		fill := i%2 == 1
		pdf.SetX(x)
		pdf.CellFormat(descW, 6, tr(item.Description), "", 0, "L", fill, 0, "")
		pdf.CellFormat(qtyW, 6, trimFloat(item.Quantity), "", 0, "R", fill, 0, "")
		pdf.CellFormat(priceW, 6, tr(invoice.FormatAmount(item.UnitPrice, inv.Currency)), "", 0, "R", fill, 0, "")
		pdf.CellFormat(totalW, 6, tr(invoice.FormatAmount(item.Total, inv.Currency)), "", 1, "R", fill, 0, "")
	}
}

func (r *PDFRenderer) drawTotals(pdf *gofpdf.Fpdf, tr func(string) string, tpl *entity.TemplateConfig, fc entity.FieldConfig, inv *entity.Invoice) {
	pos := fc.Position
	x := pos.X * pxToMM
	width := pos.Width * pxToMM
	labelW := width * 0.55
	valueW := width - labelW

	line := func(label, value string, emphasize bool) {
		r.applyStyle(pdf, tpl, fc.Style, emphasize)
		if emphasize {
			if rr, g, b, ok := hexToRGB(tpl.GlobalStyles.AccentColor); ok {
				pdf.SetTextColor(rr, g, b)
			}
		}
		pdf.SetX(x)
		pdf.CellFormat(labelW, 6, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 6, tr(value), "", 1, "R", false, 0, "")
	}

	pdf.SetY(pos.Y * pxToMM)
	line("Subtotal", invoice.FormatAmount(inv.Subtotal, inv.Currency), false)
	if inv.ShowVAT {
		label := "VAT"
		if inv.VATMode == entity.ModePercentage {
			label = fmt.Sprintf("VAT (%s)", invoice.FormatPercent(inv.VATValue))
		}
		line(label, invoice.FormatAmount(inv.TotalVAT, inv.Currency), false)
	}
	if inv.ShowDiscount {
		label := "Discount"
		if inv.DiscountMode == entity.ModePercentage {
			label = fmt.Sprintf("Discount (%s)", invoice.FormatPercent(inv.DiscountValue))
		}
		line(label, "-"+invoice.FormatAmount(inv.TotalDiscount, inv.Currency), false)
	}
	if inv.ShowShipping {
		line("Shipping", invoice.FormatAmount(inv.ShippingFee, inv.Currency), false)
	}
	line("Grand Total", invoice.FormatAmount(inv.GrandTotal, inv.Currency), true)
}

// fontFamily maps a CSS-ish font name onto a gofpdf core font.
func fontFamily(names ...string) string {
	for _, name := range names {
		switch {
		case name == "" || name == "inherit":
			continue
		case strings.Contains(strings.ToLower(name), "times"),
			strings.Contains(strings.ToLower(name), "serif") && !strings.Contains(strings.ToLower(name), "sans"):
			return "Times"
		case strings.Contains(strings.ToLower(name), "courier"),
			strings.Contains(strings.ToLower(name), "mono"):
			return "Courier"
		default:
			return "Helvetica"
		}
	}
	return "Helvetica"
}

func alignCode(textAlign string) string {
	switch textAlign {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

// hexToRGB parses #rgb and #rrggbb colors. Unparseable values (including
// "transparent") report ok=false.
func hexToRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
