package invoice

import (
	"context"

	"tripserver/models"
)

// Renderer produces a rasterized invoice image and a messaging deep link
// for a booking summary.
type Renderer interface {
	Render(ctx context.Context, req models.InvoiceRequest) (*models.InvoiceResult, error)
}

// Session is one headless browser page. Each render acquires its own
// session and releases it when done; sessions are never shared.
type Session interface {
	SetContent(ctx context.Context, html string) error
	Screenshot(ctx context.Context) ([]byte, error)
	Close()
}

// SessionFactory opens a new browser session bound to ctx.
type SessionFactory func(ctx context.Context) (Session, error)
