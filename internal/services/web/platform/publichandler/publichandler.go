// Package publichandler provides a shared base for web module handlers.
// It centralizes page rendering and error responses that would otherwise be
// duplicated across page modules.
package publichandler

import (
	"net/http"
	"time"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/weberror"
)

// Base provides page rendering and error handling. Embed it in handler
// structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	now func() time.Time
}

// Option configures a Base.
type Option func(*Base)

// WithClock sets the clock used to stamp rendered pages.
func WithClock(now func() time.Time) Option {
	return func(b *Base) { b.now = now }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Now returns the base clock reading, or the wall clock when unset.
func (b Base) Now() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// WritePage renders a full page in the site layout.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if page.Now.IsZero() {
		page.Now = b.Now()
	}
	pagerender.WritePage(w, r, page)
}

// WriteNotFound renders the 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, b.Now())
}

// WriteError renders a user-safe error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, err, b.Now())
}
