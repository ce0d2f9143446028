package handlers

import (
	"net/http"

	"tripserver/models"
	"tripserver/services/invoice"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the invoice rendering endpoint.
type InvoiceHandler struct {
	Renderer invoice.Renderer
}

// NewInvoiceHandler creates an InvoiceHandler with its renderer injected.
func NewInvoiceHandler(renderer invoice.Renderer) *InvoiceHandler {
	return &InvoiceHandler{Renderer: renderer}
}

// GenerateInvoice handles POST /generate-invoice.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var req models.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Renderer.Render(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"imageUrl":    result.ImageURL,
		"whatsappURL": result.WhatsAppURL,
	})
}
