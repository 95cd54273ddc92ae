package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(Config{ProjectID: "abc123", Dataset: "production"}, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNewClientDefaultsAndHosts(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{ProjectID: "abc123", Dataset: "production"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.Config().APIVersion != DefaultAPIVersion {
		t.Fatalf("APIVersion = %q, want %q", c.Config().APIVersion, DefaultAPIVersion)
	}
	if c.baseURL.Host != "abc123.api.sanity.io" {
		t.Fatalf("host = %q, want %q", c.baseURL.Host, "abc123.api.sanity.io")
	}

	cdn, err := NewClient(Config{ProjectID: "abc123", Dataset: "production", APIVersion: "v2023-05-03", UseCDN: true})
	if err != nil {
		t.Fatalf("NewClient(cdn) error = %v", err)
	}
	if cdn.baseURL.Host != "abc123.apicdn.sanity.io" {
		t.Fatalf("cdn host = %q", cdn.baseURL.Host)
	}
	if cdn.Config().APIVersion != "2023-05-03" {
		t.Fatalf("cdn APIVersion = %q, want %q", cdn.Config().APIVersion, "2023-05-03")
	}
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []Config{
		{},
		{ProjectID: "placeholder", Dataset: "production"},
		{ProjectID: "ABC 123", Dataset: "production"},
		{ProjectID: "abc123", Dataset: "Prod Data"},
		{ProjectID: "abc123", Dataset: "production", APIVersion: "latest"},
	}
	for _, cfg := range tests {
		if _, err := NewClient(cfg); err == nil {
			t.Fatalf("NewClient(%+v) expected error", cfg)
		}
	}
}

func TestQuerySendsGETWithEncodedParams(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v2024-01-01/data/query/production" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != `*[slug.current == $slug][0]` {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("$slug"); got != `"acme-rollout"` {
			t.Errorf("$slug = %q", got)
		}
		_, _ = io.WriteString(w, `{"ms":3,"query":"x","result":{"title":"Acme Rollout"}}`)
	})

	raw, err := c.Query(context.Background(), `*[slug.current == $slug][0]`, map[string]any{"slug": "acme-rollout"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if string(raw) != `{"title":"Acme Rollout"}` {
		t.Fatalf("result = %s", raw)
	}
}

func TestQueryPostsLongQueries(t *testing.T) {
	t.Parallel()

	longQuery := "*[_type == \"talk\" && title != \"" + strings.Repeat("x", maxGETURLLength) + "\"]"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body struct {
			Query  string         `json:"query"`
			Params map[string]any `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Query != longQuery {
			t.Errorf("posted query mismatch")
		}
		_, _ = io.WriteString(w, `{"result":[]}`)
	})

	raw, err := c.Query(context.Background(), longQuery, nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if string(raw) != `[]` {
		t.Fatalf("result = %s", raw)
	}
}

func TestQueryMapsAPIErrors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"description":"expected '}'","type":"queryParseError"}}`)
	})

	_, err := c.Query(context.Background(), "*[", nil)
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error = %v, want ResponseError", err)
	}
	if respErr.StatusCode != http.StatusBadRequest || respErr.Type != "queryParseError" {
		t.Fatalf("ResponseError = %+v", respErr)
	}
	if !strings.Contains(respErr.Error(), "expected '}'") {
		t.Fatalf("Error() = %q", respErr.Error())
	}
}

func TestQueryFlagsMalformedEnvelope(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>gateway</html>`)
	})

	_, err := c.Query(context.Background(), "*[0]", nil)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("error = %v, want ErrMalformedResponse", err)
	}
}

func TestQueryTreatsMissingResultAsNull(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ms":1}`)
	})

	raw, err := c.Query(context.Background(), "*[0]", nil)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("result = %s, want null", raw)
	}
}

func TestQueryRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{ProjectID: "abc123", Dataset: "production"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if _, err := c.Query(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected empty query error")
	}
}
