package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Upstream is a fake provider API answering fixed JSON bodies by path.
// Unknown paths answer 404. Every request's query is recorded.
type Upstream struct {
	URL string

	mu     sync.Mutex
	routes map[string]func(url.Values) (int, string)
	calls  []Call
}

// Call is one recorded request.
type Call struct {
	Path  string
	Query url.Values
}

// NewUpstream starts a fake provider that is closed with the test.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{routes: map[string]func(url.Values) (int, string){}}
	srv := httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(srv.Close)
	u.URL = srv.URL
	return u
}

// Handle answers path with body and 200.
func (u *Upstream) Handle(path, body string) *Upstream {
	return u.HandleFunc(path, func(url.Values) (int, string) { return http.StatusOK, body })
}

// HandleFunc answers path with whatever fn returns for the query.
func (u *Upstream) HandleFunc(path string, fn func(url.Values) (int, string)) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = fn
	return u
}

// Calls returns a copy of the recorded requests.
func (u *Upstream) Calls() []Call {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Call(nil), u.calls...)
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls = append(u.calls, Call{Path: r.URL.Path, Query: r.URL.Query()})
	fn, ok := u.routes[r.URL.Path]
	u.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	status, body := fn(r.URL.Query())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
