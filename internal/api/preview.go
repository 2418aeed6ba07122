package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/internal/store"
)

// respondPreview maps a store mutation result onto the HTTP response.
func (h *Handler) respondPreview(c *gin.Context, inv *entity.Invoice, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preview invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// getPreview returns the current preview invoice.
func (h *Handler) getPreview(c *gin.Context) {
	c.JSON(http.StatusOK, h.preview.Invoice())
}

// previewPDF renders the preview invoice with the current template.
func (h *Handler) previewPDF(c *gin.Context) {
	inv := h.preview.Invoice()
	data, err := h.renderer.Render(inv, h.template.Config())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\"preview.pdf\"")
	c.Data(http.StatusOK, "application/pdf", data)
}

type partyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *Handler) previewBillFrom(c *gin.Context) {
	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateBillFrom(c.Request.Context(), req.Name, req.Address)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewBillTo(c *gin.Context) {
	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateBillTo(c.Request.Context(), req.Name, req.Address)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewShippingAddress(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateShippingAddress(c.Request.Context(), req.Address)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewNumber(c *gin.Context) {
	var req struct {
		InvoiceNumber string `json:"invoice_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateInvoiceNumber(c.Request.Context(), req.InvoiceNumber)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewIncrementNumber(c *gin.Context) {
	inv, err := h.preview.IncrementInvoiceNumber(c.Request.Context())
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	inv, err := h.preview.UpdateDate(c.Request.Context(), date)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateNotes(c.Request.Context(), req.Notes)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewCurrency(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateCurrency(c.Request.Context(), req.Code)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewAddItem(c *gin.Context) {
	inv, err := h.preview.AddLineItem(c.Request.Context())
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewUpdateItem(c *gin.Context) {
	var patch store.LineItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateLineItem(c.Request.Context(), c.Param("itemID"), patch)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewRemoveItem(c *gin.Context) {
	inv, err := h.preview.RemoveLineItem(c.Request.Context(), c.Param("itemID"))
	h.respondPreview(c, inv, err)
}

type amountModeRequest struct {
	Mode  *entity.AmountMode `json:"mode,omitempty"`
	Value *float64           `json:"value,omitempty"`
}

func (r *amountModeRequest) validate() bool {
	if r.Mode == nil {
		return true
	}
	return *r.Mode == entity.ModePercentage || *r.Mode == entity.ModeAmount
}

func (h *Handler) previewVAT(c *gin.Context) {
	var req amountModeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateVAT(c.Request.Context(), req.Mode, req.Value)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewToggleVAT(c *gin.Context) {
	inv, err := h.preview.ToggleVAT(c.Request.Context())
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewDiscount(c *gin.Context) {
	var req amountModeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateDiscount(c.Request.Context(), req.Mode, req.Value)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewToggleDiscount(c *gin.Context) {
	inv, err := h.preview.ToggleDiscount(c.Request.Context())
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewShipping(c *gin.Context) {
	var req struct {
		Fee float64 `json:"fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inv, err := h.preview.UpdateShippingFee(c.Request.Context(), req.Fee)
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewToggleShipping(c *gin.Context) {
	inv, err := h.preview.ToggleShipping(c.Request.Context())
	h.respondPreview(c, inv, err)
}

func (h *Handler) previewReset(c *gin.Context) {
	inv, err := h.preview.ResetToSample(c.Request.Context())
	h.respondPreview(c, inv, err)
}
