// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"time"

	apperrors "github.com/louisbranch/aicopilot/internal/services/web/platform/errors"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the full error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteNotFound renders the 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, now time.Time) {
	pagerender.WritePage(w, r, pagerender.Page{
		Title:      "Page Not Found",
		StatusCode: http.StatusNotFound,
		Body:       webtemplates.NotFound(),
		Now:        now,
	})
}

// WriteError renders not-found and server failures as full pages and
// everything else as plain text.
func WriteError(w http.ResponseWriter, r *http.Request, err error, now time.Time) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if !ShouldRenderErrorPage(statusCode) {
		httpx.WriteError(w, err)
		return
	}
	if statusCode == http.StatusNotFound {
		WriteNotFound(w, r, now)
		return
	}
	title := http.StatusText(statusCode)
	pagerender.WritePage(w, r, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Body:       webtemplates.ErrorPage(title, "Something went wrong on our side. Please try again shortly."),
		Now:        now,
	})
}
