package invoice

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tripserver/models"
)

// Placeholders every invoice template must reference. A template missing
// one of them is rejected up front rather than rendering a partial invoice.
var requiredPlaceholders = []string{".CustomerName", ".From", ".To", ".Date", ".Amount"}

const invoiceMessage = "Hello, here is your trip booking invoice:\n\n" +
	"From: %s\nTo: %s\nDate: %s\nAmount: ₹%s\nInvoice: %s"

// ChromeRenderer renders the invoice template in a headless browser and
// captures a full-page screenshot into OutputDir.
type ChromeRenderer struct {
	TemplatePath string
	OutputDir    string
	BaseURL      string
	Timeout      time.Duration

	// NewSession defaults to NewChromeSession; tests inject fakes here.
	NewSession SessionFactory
}

// NewChromeRenderer creates a Renderer with the default browser backend.
func NewChromeRenderer(templatePath, outputDir, baseURL string, timeout time.Duration) *ChromeRenderer {
	return &ChromeRenderer{
		TemplatePath: templatePath,
		OutputDir:    outputDir,
		BaseURL:      baseURL,
		Timeout:      timeout,
		NewSession:   NewChromeSession,
	}
}

// Render populates the invoice template, rasterizes it and returns the image
// URL together with a wa.me deep link embedding the invoice summary. Any
// stage failure is reported as a RenderError; the browser session is torn
// down on every path.
func (r *ChromeRenderer) Render(ctx context.Context, req models.InvoiceRequest) (*models.InvoiceResult, error) {
	// The template is re-read on every call so edits apply without restart.
	raw, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return nil, models.NewRenderError("template", err)
	}
	for _, placeholder := range requiredPlaceholders {
		if !strings.Contains(string(raw), placeholder) {
			return nil, models.NewRenderError("template",
				fmt.Errorf("placeholder %s missing from template", placeholder))
		}
	}

	tmpl, err := template.New("invoice").Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, models.NewRenderError("template", err)
	}
	var html bytes.Buffer
	data := map[string]string{
		"CustomerName": req.CustomerName,
		"From":         req.From,
		"To":           req.To,
		"Date":         req.Date,
		"Amount":       req.Amount,
	}
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, models.NewRenderError("template", err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	newSession := r.NewSession
	if newSession == nil {
		newSession = NewChromeSession
	}
	sess, err := newSession(ctx)
	if err != nil {
		return nil, models.NewRenderError("browser", err)
	}
	defer sess.Close()

	if err := sess.SetContent(ctx, html.String()); err != nil {
		return nil, models.NewRenderError("content", err)
	}
	shot, err := sess.Screenshot(ctx)
	if err != nil {
		return nil, models.NewRenderError("screenshot", err)
	}

	fileName := fmt.Sprintf("invoice-%d.png", time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(r.OutputDir, fileName), shot, 0o644); err != nil {
		return nil, models.NewRenderError("write", err)
	}

	imageURL := fmt.Sprintf("%s/public/%s", strings.TrimRight(r.BaseURL, "/"), fileName)
	message := fmt.Sprintf(invoiceMessage, req.From, req.To, req.Date, req.Amount, imageURL)
	whatsappURL := fmt.Sprintf("https://wa.me/%s?text=%s", req.ContactNo, url.QueryEscape(message))

	return &models.InvoiceResult{ImageURL: imageURL, WhatsAppURL: whatsappURL}, nil
}
