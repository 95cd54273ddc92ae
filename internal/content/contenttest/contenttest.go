// Package contenttest provides scripted content sources for handler tests.
package contenttest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
)

// Querier answers queries from canned JSON keyed by GROQ text. Queries with
// no canned answer return null.
type Querier struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   []Call
}

// Call records one query invocation.
type Call struct {
	GROQ   string
	Params map[string]any
}

// NewQuerier returns an empty scripted querier.
func NewQuerier() *Querier {
	return &Querier{results: map[string]string{}, errs: map[string]error{}}
}

// Respond scripts the raw JSON result for q.
func (f *Querier) Respond(q content.Query, result string) *Querier {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[strings.TrimSpace(q.GROQ)] = result
	return f
}

// Fail scripts a transport error for q.
func (f *Querier) Fail(q content.Query, err error) *Querier {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[strings.TrimSpace(q.GROQ)] = err
	return f
}

// Query implements sanity.Querier.
func (f *Querier) Query(_ context.Context, query string, params map[string]any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{GROQ: query, Params: params})
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if result, ok := f.results[query]; ok {
		return json.RawMessage(result), nil
	}
	return json.RawMessage("null"), nil
}

// Calls returns the invocations so far.
func (f *Querier) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

type source struct {
	querier sanity.Querier
}

func (s source) Querier() (sanity.Querier, bool) {
	if s.querier == nil {
		return nil, false
	}
	return s.querier, true
}

// Reports collects reported fetch failures.
type Reports struct {
	mu       sync.Mutex
	failures []*content.FetchError
}

func (r *Reports) record(err *content.FetchError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)
}

// Failures returns the reported failures so far.
func (r *Reports) Failures() []*content.FetchError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*content.FetchError(nil), r.failures...)
}

// String summarizes reported failures for test messages.
func (r *Reports) String() string {
	failures := r.Failures()
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, fmt.Sprintf("%s/%s", f.Query, f.Reason))
	}
	return fmt.Sprint(out)
}

// NewExecutor builds an uncached executor over q. A nil q behaves like an
// unconfigured content source.
func NewExecutor(t testing.TB, q *Querier) (*content.Executor, *Reports) {
	t.Helper()
	reports := &Reports{}
	var src source
	if q != nil {
		src.querier = q
	}
	exec, err := content.NewExecutor(src, content.WithRevalidate(0), content.WithReporter(reports.record))
	if err != nil {
		t.Fatalf("content.NewExecutor() error = %v", err)
	}
	return exec, reports
}
