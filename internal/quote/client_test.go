package quote

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping due to restricted socket sandbox: %v", err)
	}
	ts := httptest.NewUnstartedServer(h)
	ts.Listener = ln
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func TestFetch(t *testing.T) {
	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"quote":"I feel like I'm too busy writing history to read it."}`))
	})

	q, err := NewClient(ts.URL).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q.Quote != "I feel like I'm too busy writing history to read it." {
		t.Fatalf("unexpected quote %q", q.Quote)
	}
}

func TestFetchErrors(t *testing.T) {
	status := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	if _, err := NewClient(status.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected status error")
	}

	empty := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quote":"  "}`))
	})
	if _, err := NewClient(empty.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected empty quote error")
	}

	garbage := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	if _, err := NewClient(garbage.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewClientDefaultURL(t *testing.T) {
	if NewClient("").url != DefaultURL {
		t.Fatal("expected default url")
	}
}
