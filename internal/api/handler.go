package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/krish-p25/invoice-generator/internal/csvio"
	"github.com/krish-p25/invoice-generator/internal/export"
	"github.com/krish-p25/invoice-generator/internal/invoice"
	"github.com/krish-p25/invoice-generator/internal/store"
	"go.uber.org/zap"
)

// Handler wires the HTTP API onto the stores and exporters.
type Handler struct {
	session  *store.SessionStore
	preview  *store.PreviewStore
	template *store.TemplateStore

	parser   *csvio.Parser
	grouper  *invoice.Grouper
	renderer *export.PDFRenderer
	bulk     *export.BulkExporter
	xlsx     *export.XLSXWriter

	maxUploadBytes int64
	logoDir        string
	logger         *zap.Logger
}

// HandlerConfig holds handler dependencies.
type HandlerConfig struct {
	Session  *store.SessionStore
	Preview  *store.PreviewStore
	Template *store.TemplateStore

	Parser   *csvio.Parser
	Grouper  *invoice.Grouper
	Renderer *export.PDFRenderer
	Bulk     *export.BulkExporter
	XLSX     *export.XLSXWriter

	MaxUploadBytes int64
	LogoDir        string
}

// NewHandler creates a new API handler.
func NewHandler(cfg HandlerConfig, logger *zap.Logger) *Handler {
	return &Handler{
		session:        cfg.Session,
		preview:        cfg.Preview,
		template:       cfg.Template,
		parser:         cfg.Parser,
		grouper:        cfg.Grouper,
		renderer:       cfg.Renderer,
		bulk:           cfg.Bulk,
		xlsx:           cfg.XLSX,
		maxUploadBytes: cfg.MaxUploadBytes,
		logoDir:        cfg.LogoDir,
		logger:         logger,
	}
}

// RegisterRoutes mounts every API route onto the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoice-generator",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/invoices/upload", h.uploadCSV)
		api.GET("/invoices", h.listInvoices)
		api.DELETE("/invoices", h.clearInvoices)
		api.GET("/invoices/export/zip", h.exportZIP)
		api.GET("/invoices/export/xlsx", h.exportXLSX)
		api.GET("/invoices/:id", h.getInvoice)
		api.DELETE("/invoices/:id", h.removeInvoice)
		api.PUT("/invoices/:id/select", h.selectInvoice)
		api.GET("/invoices/:id/pdf", h.exportPDF)

		api.GET("/csv-template", h.csvTemplate)
		api.GET("/currencies", h.listCurrencies)

		api.GET("/preview", h.getPreview)
		api.GET("/preview/pdf", h.previewPDF)
		api.PUT("/preview/bill-from", h.previewBillFrom)
		api.PUT("/preview/bill-to", h.previewBillTo)
		api.PUT("/preview/shipping-address", h.previewShippingAddress)
		api.PUT("/preview/number", h.previewNumber)
		api.POST("/preview/number/increment", h.previewIncrementNumber)
		api.PUT("/preview/date", h.previewDate)
		api.PUT("/preview/notes", h.previewNotes)
		api.PUT("/preview/currency", h.previewCurrency)
		api.POST("/preview/items", h.previewAddItem)
		api.PUT("/preview/items/:itemID", h.previewUpdateItem)
		api.DELETE("/preview/items/:itemID", h.previewRemoveItem)
		api.PUT("/preview/vat", h.previewVAT)
		api.POST("/preview/vat/toggle", h.previewToggleVAT)
		api.PUT("/preview/discount", h.previewDiscount)
		api.POST("/preview/discount/toggle", h.previewToggleDiscount)
		api.PUT("/preview/shipping", h.previewShipping)
		api.POST("/preview/shipping/toggle", h.previewToggleShipping)
		api.POST("/preview/reset", h.previewReset)

		api.GET("/template", h.getTemplate)
		api.PUT("/template", h.loadTemplate)
		api.POST("/template/reset", h.resetTemplate)
		api.PUT("/template/global-styles", h.templateGlobalStyles)
		api.PUT("/template/fields/:type/visibility", h.templateFieldVisibility)
		api.PUT("/template/fields/:type/position", h.templateFieldPosition)
		api.PUT("/template/fields/:type/style", h.templateFieldStyle)
		api.PUT("/template/logo", h.templateLogo)
		api.POST("/template/logo/upload", h.templateLogoUpload)
		api.PUT("/template/layout", h.templateLayout)
	}
}
