package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
	"github.com/louisbranch/aicopilot/internal/services/web/storage"
	"github.com/louisbranch/aicopilot/internal/services/web/storage/sqlite"
)

type fakeStore struct {
	mu    sync.Mutex
	saved []storage.ContactMessage
	err   error
}

func (s *fakeStore) SaveContactMessage(_ context.Context, msg storage.ContactMessage) (storage.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return storage.ContactMessage{}, s.err
	}
	msg.ID = "msg-1"
	s.saved = append(s.saved, msg)
	return msg, nil
}

func (s *fakeStore) ListContactMessages(context.Context, int) ([]storage.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.ContactMessage(nil), s.saved...), nil
}

var fixedNow = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func newMux(store storage.ContactStore) *http.ServeMux {
	mux := http.NewServeMux()
	svc := newService(store, func() time.Time { return fixedNow })
	registerRoutes(mux, newHandlers(svc, publichandler.NewBase()))
	return mux
}

func postForm(mux http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, routepath.Contact, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func validValues() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"company": {"Analytical Engines"},
		"message": {"We want to pilot an assistant."},
	}
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil, nil), publichandler.NewBase()))
}

func TestContactFormRenders(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newMux(&fakeStore{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Contact, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Get in Touch", `<form method="post" action="/contact"`, `name="email"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
}

func TestContactSubmitStoresMessage(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	rr := postForm(newMux(store), validValues())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Thanks for reaching out.") {
		t.Fatalf("body missing thank-you notice: %q", body)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(store.saved))
	}
	got := store.saved[0]
	if got.Email != "ada@example.com" || got.Company != "Analytical Engines" {
		t.Fatalf("saved = %+v", got)
	}
	if !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, fixedNow)
	}
}

func TestContactSubmitRerendersWithFieldErrors(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	values := url.Values{"name": {"Ada"}, "email": {"not-an-email"}, "message": {"  "}}
	rr := postForm(newMux(store), values)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	for _, want := range []string{"Enter a valid email address.", "Message is required.", `value="Ada"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
	if len(store.saved) != 0 {
		t.Fatalf("saved = %d, want 0", len(store.saved))
	}
}

func TestContactSubmitStoreFailure(t *testing.T) {
	t.Parallel()

	rr := postForm(newMux(&fakeStore{err: errors.New("disk full")}), validValues())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if strings.Contains(body, "disk full") {
		t.Fatalf("body leaked storage error: %q", body)
	}
	if !strings.Contains(body, templ.EscapeString(failureMessage)) {
		t.Fatalf("body missing failure notice: %q", body)
	}
}

func TestContactSubmitWithoutStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := postForm(newMux(nil), validValues())
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestContactSubmitPersistsToSQLite(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "contact.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	rr := postForm(newMux(store), validValues())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	messages, err := store.ListContactMessages(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 || messages[0].Name != "Ada Lovelace" || messages[0].ID == "" {
		t.Fatalf("messages = %+v, want one stored submission", messages)
	}
}

func TestContactNestedPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newMux(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ContactPrefix+"sent", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRegisterRoutesContactMethodContract(t *testing.T) {
	t.Parallel()

	mux := newMux(&fakeStore{})
	for _, path := range []string{routepath.Contact, routepath.ContactPrefix} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("PUT %s status = %d, want %d", path, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != "GET, POST, HEAD" {
			t.Fatalf("Allow = %q, want %q", got, "GET, POST, HEAD")
		}
	}
}
