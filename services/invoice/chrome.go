package invoice

import (
	"context"
	"encoding/base64"

	"github.com/chromedp/chromedp"
)

// chromeSession drives one headless Chrome page over the DevTools protocol.
type chromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// NewChromeSession launches a dedicated headless browser bound to ctx.
// Cancelling ctx (e.g. on render timeout) kills the browser process.
func NewChromeSession(ctx context.Context) (Session, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	// Run with no actions starts the browser eagerly so launch failures
	// surface here instead of on the first navigation.
	if err := chromedp.Run(pageCtx); err != nil {
		cancelPage()
		cancelAlloc()
		return nil, err
	}
	return &chromeSession{
		ctx:     pageCtx,
		cancels: []context.CancelFunc{cancelPage, cancelAlloc},
	}, nil
}

func (s *chromeSession) SetContent(_ context.Context, html string) error {
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
	return chromedp.Run(s.ctx, chromedp.Navigate(dataURL))
}

func (s *chromeSession) Screenshot(_ context.Context) ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(s.ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *chromeSession) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
