package talks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/contenttest"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func serve(t *testing.T, q *contenttest.Querier) (*httptest.ResponseRecorder, *contenttest.Reports) {
	t.Helper()
	exec, reports := contenttest.NewExecutor(t, q)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(exec, publichandler.NewBase()))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Talks, nil))
	return rr, reports
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(nil, publichandler.NewBase()))
}

func TestTalksRendersList(t *testing.T) {
	t.Parallel()

	q := contenttest.NewQuerier().Respond(content.AllTalksQuery, `[
		{"_id": "t1", "title": "Agents in Production", "slug": {"current": "agents"}, "date": "2026-11-20", "type": "conference", "status": "upcoming", "venue": "AI Summit", "location": "Berlin"},
		{"_id": "t2", "title": "Evaluating LLMs", "slug": {"current": "evals"}, "date": "2025-04-02", "type": "podcast", "status": "past", "recordingUrl": "https://video.example.com/evals"}
	]`)
	rr, _ := serve(t, q)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Agents in Production", "Evaluating LLMs", "Upcoming", "Podcast", "Nov 20, 2026", "Watch Recording"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
}

func TestTalksDropsInvalidItems(t *testing.T) {
	t.Parallel()

	q := contenttest.NewQuerier().Respond(content.AllTalksQuery, `[
		{"_id": "t1", "title": "Agents in Production", "status": "rescheduled"},
		{"_id": "t2", "title": "Evaluating LLMs", "status": "past"}
	]`)
	rr, reports := serve(t, q)
	body := rr.Body.String()
	if strings.Contains(body, "Agents in Production") {
		t.Fatalf("body contains invalid talk: %q", body)
	}
	if !strings.Contains(body, "Evaluating LLMs") {
		t.Fatalf("body missing valid talk: %q", body)
	}
	if got := len(reports.Failures()); got != 1 {
		t.Fatalf("reports = %s, want one invalid report", reports)
	}
}

func TestTalksEmptyAndFailedStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    *contenttest.Querier
		want string
	}{
		{name: "not configured", q: nil, want: "Sanity Not Configured"},
		{name: "empty list", q: contenttest.NewQuerier().Respond(content.AllTalksQuery, `[]`), want: "No Talks Yet"},
		{name: "null result", q: contenttest.NewQuerier(), want: "No Talks Yet"},
		{name: "transport failure", q: contenttest.NewQuerier().Fail(content.AllTalksQuery, errors.New("timeout")), want: "No Talks Yet"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr, _ := serve(t, tc.q)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if body := rr.Body.String(); !strings.Contains(body, tc.want) {
				t.Fatalf("body missing %q: %q", tc.want, body)
			}
		})
	}
}

func TestRegisterRoutesTalksMethodContract(t *testing.T) {
	t.Parallel()

	exec, _ := contenttest.NewExecutor(t, nil)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(exec, publichandler.NewBase()))
	for _, path := range []string{routepath.Talks, routepath.TalksPrefix} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status = %d, want %d", path, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
			t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
		}
	}
}
