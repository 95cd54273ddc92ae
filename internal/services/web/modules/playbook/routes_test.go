package playbook

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/contenttest"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func newMux(t *testing.T, q *contenttest.Querier) *http.ServeMux {
	t.Helper()
	exec, _ := contenttest.NewExecutor(t, q)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(exec, publichandler.NewBase()))
	return mux
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(nil, publichandler.NewBase()))
}

func TestRegisterRoutesPlaybookMethodContract(t *testing.T) {
	t.Parallel()

	mux := newMux(t, nil)

	for _, path := range []string{routepath.Playbook, routepath.PlaybookPrefix} {
		getRR := httptest.NewRecorder()
		mux.ServeHTTP(getRR, httptest.NewRequest(http.MethodGet, path, nil))
		if getRR.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, getRR.Code, http.StatusOK)
		}
		if getRR.Header().Get("Content-Type") != "text/html; charset=utf-8" {
			t.Fatalf("content-type = %q, want %q", getRR.Header().Get("Content-Type"), "text/html; charset=utf-8")
		}
	}

	postRR := httptest.NewRecorder()
	mux.ServeHTTP(postRR, httptest.NewRequest(http.MethodPost, routepath.Playbook, nil))
	if postRR.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", postRR.Code, http.StatusMethodNotAllowed)
	}
	if got := postRR.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}

	nestedRR := httptest.NewRecorder()
	mux.ServeHTTP(nestedRR, httptest.NewRequest(http.MethodGet, routepath.PlaybookPrefix+"extra", nil))
	if nestedRR.Code != http.StatusNotFound {
		t.Fatalf("nested status = %d, want %d", nestedRR.Code, http.StatusNotFound)
	}
}

func TestPlaybookRendersDownload(t *testing.T) {
	t.Parallel()

	q := contenttest.NewQuerier().Respond(content.PlaybookQuery, `{
		"_id": "playbook",
		"title": "The AI Playbook",
		"description": "How to ship AI features",
		"pdfFile": {"asset": {"_id": "file-1", "url": "https://cdn.sanity.io/files/p/d/playbook.pdf", "originalFilename": "ai-playbook.pdf", "size": 2048000}}
	}`)
	rr := httptest.NewRecorder()
	newMux(t, q).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Playbook, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"<h1>The AI Playbook</h1>", `download="ai-playbook.pdf"`, "ai-playbook.pdf · 2.0 MB", `<meta name="description" content="How to ship AI features">`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
}

func TestPlaybookStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    *contenttest.Querier
		want string
	}{
		{name: "not configured", q: nil, want: "Sanity Not Configured"},
		{name: "no record", q: contenttest.NewQuerier(), want: "Playbook Content Missing"},
		{name: "missing title", q: contenttest.NewQuerier().Respond(content.PlaybookQuery, `{"_id":"p"}`), want: "Playbook Content Missing"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			newMux(t, tc.q).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Playbook, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if body := rr.Body.String(); !strings.Contains(body, tc.want) {
				t.Fatalf("body missing %q: %q", tc.want, body)
			}
		})
	}
}
