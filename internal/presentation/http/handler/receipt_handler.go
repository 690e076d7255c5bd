package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dustore/pos-admin-api/internal/application/service"
	"github.com/dustore/pos-admin-api/internal/presentation/http/dto/request"
	"github.com/dustore/pos-admin-api/internal/presentation/http/dto/response"
)

// qrDefaultSize is the QR code edge length in pixels.
const qrDefaultSize = 256

// ReceiptHandler exposes the receipt content, the printable PDF and the
// WhatsApp dispatch endpoints for one order.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Content returns the canonical receipt content as JSON. The PDF and the
// customer message are both projections of exactly this payload.
func (h *ReceiptHandler) Content(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	content, err := h.receiptService.BuildContent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", content)
}

// PDF streams the rendered receipt document as a download named
// Struk_<id>.pdf.
func (h *ReceiptHandler) PDF(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	name, data, err := h.receiptService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
	c.Data(200, "application/pdf", data)
}

// WhatsApp composes the notification message and wa.me link for an order.
// The caller opens the link; nothing is sent from here.
func (h *ReceiptHandler) WhatsApp(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req request.WhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dispatch, err := h.receiptService.ComposeWhatsApp(c.Request.Context(), id, req.Phone, req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link composed successfully", dispatch)
}

// WhatsAppQR renders the dispatch link as a PNG QR code so a phone camera
// can pick up the prefilled chat from the cashier screen.
func (h *ReceiptHandler) WhatsAppQR(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	rawPhone := c.Query("phone")
	if rawPhone == "" {
		response.BadRequest(c, "Query parameter 'phone' is required")
		return
	}

	size := qrDefaultSize
	if s, err := strconv.Atoi(c.Query("size")); err == nil && s > 0 {
		size = s
	}

	png, err := h.receiptService.WhatsAppQR(c.Request.Context(), id, rawPhone, c.Query("customer_name"), size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}
