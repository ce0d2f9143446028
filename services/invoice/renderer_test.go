package invoice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tripserver/models"
)

const testTemplate = `<html><body>
<p>Customer: {{.CustomerName}}</p>
<p>From: {{.From}}</p>
<p>To: {{.To}}</p>
<p>Date: {{.Date}}</p>
<p>Amount: {{.Amount}}</p>
</body></html>`

type sessionCounter struct {
	opened int32
	closed int32
}

type fakeSession struct {
	mu      sync.Mutex
	html    string
	setErr  error
	shotErr error
	counter *sessionCounter
}

func (s *fakeSession) SetContent(_ context.Context, html string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	s.html = html
	s.mu.Unlock()
	return nil
}

func (s *fakeSession) Screenshot(_ context.Context) ([]byte, error) {
	if s.shotErr != nil {
		return nil, s.shotErr
	}
	return []byte("png"), nil
}

func (s *fakeSession) Close() {
	if s.counter != nil {
		atomic.AddInt32(&s.counter.closed, 1)
	}
}

func newTestRenderer(t *testing.T, tmpl string, factory SessionFactory) *ChromeRenderer {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bill.html")
	if err := os.WriteFile(path, []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return &ChromeRenderer{
		TemplatePath: path,
		OutputDir:    dir,
		BaseURL:      "http://127.0.0.1:5500",
		Timeout:      5 * time.Second,
		NewSession:   factory,
	}
}

func janeRequest() models.InvoiceRequest {
	return models.InvoiceRequest{
		ContactNo:    "919876543210",
		CustomerName: "Jane",
		From:         "Delhi",
		To:           "Mumbai",
		Date:         "05/05/2025",
		Amount:       "2500",
	}
}

func TestRenderSubstitutesAllFields(t *testing.T) {
	sess := &fakeSession{}
	r := newTestRenderer(t, testTemplate, func(context.Context) (Session, error) {
		return sess, nil
	})

	result, err := r.Render(context.Background(), janeRequest())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(sess.html, "{{") {
		t.Fatalf("unsubstituted placeholder left in rendered HTML:\n%s", sess.html)
	}
	for _, want := range []string{"Jane", "Delhi", "Mumbai", "05/05/2025", "2500"} {
		if !strings.Contains(sess.html, want) {
			t.Fatalf("rendered HTML missing %q:\n%s", want, sess.html)
		}
	}

	if !strings.HasPrefix(result.ImageURL, "http://127.0.0.1:5500/public/invoice-") ||
		!strings.HasSuffix(result.ImageURL, ".png") {
		t.Fatalf("unexpected image URL %q", result.ImageURL)
	}

	link, err := url.Parse(result.WhatsAppURL)
	if err != nil {
		t.Fatalf("bad deep link %q: %v", result.WhatsAppURL, err)
	}
	if link.Host != "wa.me" || link.Path != "/919876543210" {
		t.Fatalf("deep link not addressed to contact: %q", result.WhatsAppURL)
	}
	text := link.Query().Get("text")
	for _, want := range []string{"Delhi", "Mumbai", "05/05/2025", "2500", result.ImageURL} {
		if !strings.Contains(text, want) {
			t.Fatalf("decoded message missing %q:\n%s", want, text)
		}
	}
}

func TestRenderWritesImageFile(t *testing.T) {
	sess := &fakeSession{}
	r := newTestRenderer(t, testTemplate, func(context.Context) (Session, error) {
		return sess, nil
	})

	result, err := r.Render(context.Background(), janeRequest())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	name := result.ImageURL[strings.LastIndex(result.ImageURL, "/")+1:]
	data, err := os.ReadFile(filepath.Join(r.OutputDir, name))
	if err != nil {
		t.Fatalf("screenshot file not written: %v", err)
	}
	if string(data) != "png" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestRenderRejectsTemplateMissingPlaceholder(t *testing.T) {
	counter := &sessionCounter{}
	noAmount := strings.ReplaceAll(testTemplate, "{{.Amount}}", "1000")
	r := newTestRenderer(t, noAmount, func(context.Context) (Session, error) {
		atomic.AddInt32(&counter.opened, 1)
		return &fakeSession{counter: counter}, nil
	})

	_, err := r.Render(context.Background(), janeRequest())
	var renderErr *models.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if atomic.LoadInt32(&counter.opened) != 0 {
		t.Fatal("browser session opened for a template that cannot render")
	}
}

func TestRenderMissingTemplateFile(t *testing.T) {
	r := &ChromeRenderer{
		TemplatePath: filepath.Join(t.TempDir(), "absent.html"),
		OutputDir:    t.TempDir(),
		BaseURL:      "http://127.0.0.1:5500",
		NewSession: func(context.Context) (Session, error) {
			t.Fatal("session opened despite missing template")
			return nil, nil
		},
	}

	_, err := r.Render(context.Background(), janeRequest())
	var renderErr *models.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
}

func TestRenderReleasesSessionOnEveryFailure(t *testing.T) {
	counter := &sessionCounter{}
	stageErr := errors.New("stage failed")

	failures := []func() *fakeSession{
		func() *fakeSession { return &fakeSession{setErr: stageErr, counter: counter} },
		func() *fakeSession { return &fakeSession{shotErr: stageErr, counter: counter} },
	}

	for _, mk := range failures {
		for i := 0; i < 3; i++ {
			sess := mk()
			r := newTestRenderer(t, testTemplate, func(context.Context) (Session, error) {
				atomic.AddInt32(&counter.opened, 1)
				return sess, nil
			})

			_, err := r.Render(context.Background(), janeRequest())
			var renderErr *models.RenderError
			if !errors.As(err, &renderErr) {
				t.Fatalf("expected RenderError, got %v", err)
			}
		}
	}

	opened := atomic.LoadInt32(&counter.opened)
	closed := atomic.LoadInt32(&counter.closed)
	if opened != 6 || closed != opened {
		t.Fatalf("session leak: opened %d, closed %d", opened, closed)
	}
}

func TestRenderBrowserLaunchFailure(t *testing.T) {
	r := newTestRenderer(t, testTemplate, func(context.Context) (Session, error) {
		return nil, errors.New("no chrome binary")
	})

	_, err := r.Render(context.Background(), janeRequest())
	var renderErr *models.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if renderErr.Stage != "browser" {
		t.Fatalf("expected browser stage failure, got %q", renderErr.Stage)
	}
}

func TestConcurrentRendersAreIsolated(t *testing.T) {
	const workers = 8

	sessions := make([]*fakeSession, workers)
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		i := i
		sessions[i] = &fakeSession{}
		r := newTestRenderer(t, testTemplate, func(context.Context) (Session, error) {
			return sessions[i], nil
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			req := janeRequest()
			req.CustomerName = fmt.Sprintf("Customer-%d", i)
			_, errs[i] = r.Render(context.Background(), req)
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("render %d failed: %v", i, errs[i])
		}
		own := fmt.Sprintf("Customer-%d", i)
		if !strings.Contains(sessions[i].html, own) {
			t.Fatalf("render %d output does not reflect its own input", i)
		}
		for j := 0; j < workers; j++ {
			if j == i {
				continue
			}
			other := fmt.Sprintf("Customer-%d<", j)
			if strings.Contains(sessions[i].html, other) {
				t.Fatalf("render %d output contains render %d's input", i, j)
			}
		}
	}
}
