package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/krish-p25/invoice-generator/internal/csvio"
	"github.com/krish-p25/invoice-generator/internal/export"
	"github.com/krish-p25/invoice-generator/internal/invoice"
	"go.uber.org/zap"
)

// uploadCSV ingests a CSV file, validates its rows, groups them into
// per-customer invoices and replaces the session state. Row-level
// validation errors are returned alongside the invoices, never as a
// request failure.
func (h *Handler) uploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds %d byte limit", h.maxUploadBytes),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.parser.Parse(file)
	if err != nil {
		// File-level failure: the whole upload short-circuits to empty.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	invoices := h.grouper.Group(result.Rows)
	h.session.SetUpload(invoices, result.Errors)

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"errors":   result.Errors,
	})
}

// listInvoices returns the grouped invoices of the current session.
func (h *Handler) listInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"invoices": h.session.Invoices(),
		"errors":   h.session.Errors(),
		"selected": h.session.Selected(),
	})
}

// getInvoice returns one invoice by ID.
func (h *Handler) getInvoice(c *gin.Context) {
	inv := h.session.Get(c.Param("id"))
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// selectInvoice marks an invoice as the current selection.
func (h *Handler) selectInvoice(c *gin.Context) {
	id := c.Param("id")
	if h.session.Get(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	h.session.Select(id)
	c.JSON(http.StatusOK, gin.H{"selected": id})
}

// removeInvoice deletes one invoice from the session.
func (h *Handler) removeInvoice(c *gin.Context) {
	if !h.session.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// clearInvoices drops the whole upload.
func (h *Handler) clearInvoices(c *gin.Context) {
	h.session.Clear()
	c.Status(http.StatusNoContent)
}

// exportPDF renders one invoice with the current template.
func (h *Handler) exportPDF(c *gin.Context) {
	inv := h.session.Get(c.Param("id"))
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	data, err := h.renderer.Render(inv, h.template.Config())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
		return
	}

	name := invoice.PDFFileName(inv)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", data)
}

// exportZIP renders every session invoice sequentially and streams the
// resulting archive.
func (h *Handler) exportZIP(c *gin.Context) {
	invoices := h.session.Invoices()
	if len(invoices) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no invoices to export"})
		return
	}

	tpl := h.template.Config()
	files := h.bulk.ExportPDFs(invoices, tpl, func(done, total int) {
		h.logger.Debug("Bulk export progress",
			zap.Int("done", done),
			zap.Int("total", total),
			zap.Float64("fraction", float64(done)/float64(total)))
	})

	archive, err := export.BuildArchive(files)
	if err != nil {
		h.logger.Error("Failed to build ZIP archive", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build archive"})
		return
	}

	name := invoice.ArchiveName(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/zip", archive)
}

// exportXLSX streams the batch summary workbook.
func (h *Handler) exportXLSX(c *gin.Context) {
	invoices := h.session.Invoices()
	if len(invoices) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no invoices to export"})
		return
	}

	data, err := h.xlsx.SummaryWorkbook(invoices)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	name := export.WorkbookFileName(time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// csvTemplate streams the downloadable CSV starter file.
func (h *Handler) csvTemplate(c *gin.Context) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvio.TemplateFileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvio.Template())
}

// listCurrencies returns the supported currency catalogue.
func (h *Handler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": invoice.Currencies})
}
