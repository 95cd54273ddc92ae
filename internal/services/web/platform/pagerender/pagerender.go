// Package pagerender centralizes full-page rendering for web modules.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

// Page describes one full HTML response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Body        templ.Component
	// Now stamps the footer year. Zero uses the wall clock.
	Now time.Time
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the site layout. The page is buffered so a
// render failure produces a plain 500 instead of a truncated document.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	now := page.Now
	if now.IsZero() {
		now = time.Now()
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}

	meta := webtemplates.PageMeta{
		Title:       page.Title,
		Description: page.Description,
		CurrentPath: path,
		Year:        now.Year(),
	}
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(meta).Render(ctx, &buf); err != nil {
		log.Printf("render page failed path=%s err=%v", path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, statusCode, buf.Bytes())
}
