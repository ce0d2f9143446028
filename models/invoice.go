package models

// InvoiceRequest carries the fields substituted into the invoice template.
type InvoiceRequest struct {
	ContactNo    string `json:"contactNo"`
	CustomerName string `json:"customerName"`
	From         string `json:"from"`
	To           string `json:"to"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
}

// InvoiceResult is what a successful render produces: the public URL of the
// rasterized image and a messaging deep link embedding the summary text.
type InvoiceResult struct {
	ImageURL    string `json:"imageUrl"`
	WhatsAppURL string `json:"whatsappURL"`
}
