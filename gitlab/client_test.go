package gitlab

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newTestServer serves handler and returns settings pointing at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, Settings) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(WithHTTPClient(server.Client()))
	return client, Settings{BaseURL: server.URL, Token: "test-token"}
}

func TestListSnippets(t *testing.T) {
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v4/snippets" {
			t.Errorf("path = %s, want /api/v4/snippets", r.URL.Path)
		}
		if got := r.Header.Get("PRIVATE-TOKEN"); got != "test-token" {
			t.Errorf("PRIVATE-TOKEN = %q, want test-token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "A", "file_name": "a.md", "visibility": "public", "author": {"id": 9}},
			{"id": "2", "title": "B", "file_name": "b.md", "visibility": "private"}
		]`))
	})

	snippets, err := client.ListSnippets(context.Background(), settings)
	if err != nil {
		t.Fatalf("ListSnippets: %v", err)
	}
	want := []Snippet{
		{ID: "1", Title: "A", FileName: "a.md", Visibility: "public"},
		{ID: "2", Title: "B", FileName: "b.md", Visibility: "private"},
	}
	if len(snippets) != len(want) {
		t.Fatalf("got %d snippets, want %d", len(snippets), len(want))
	}
	for i := range want {
		if snippets[i] != want[i] {
			t.Errorf("snippet[%d] = %+v, want %+v", i, snippets[i], want[i])
		}
	}
}

func TestListSnippets_Empty(t *testing.T) {
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	snippets, err := client.ListSnippets(context.Background(), settings)
	if err != nil {
		t.Fatalf("ListSnippets: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("got %d snippets, want 0", len(snippets))
	}
}

func TestListSnippets_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"401 Unauthorized"}`, wantStatus: 401},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantStatus: 500},
		{name: "malformed json", status: http.StatusOK, body: `[{"id": 1,`},
		{name: "not an array", status: http.StatusOK, body: `{"id": 1}`},
		{name: "missing title", status: http.StatusOK, body: `[{"id": 1, "file_name": "a", "visibility": "public"}]`},
		{name: "missing file_name", status: http.StatusOK, body: `[{"id": 1, "title": "a", "visibility": "public"}]`},
		{name: "missing visibility", status: http.StatusOK, body: `[{"id": 1, "title": "a", "file_name": "a"}]`},
		{name: "null id", status: http.StatusOK, body: `[{"id": null, "title": "a", "file_name": "a", "visibility": "public"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.ListSnippets(context.Background(), settings)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrRemoteFetch) {
				t.Errorf("error %v does not match ErrRemoteFetch", err)
			}
			if IsConfigMissing(err) {
				t.Errorf("error %v should not be a configuration error", err)
			}
			if got := StatusCode(err); got != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestListSnippets_NoTokenSendsNothing(t *testing.T) {
	var calls atomic.Int32
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	})
	settings.Token = "   "

	_, err := client.ListSnippets(context.Background(), settings)
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("err = %v, want ErrConfigMissing", err)
	}
	if errors.Is(err, ErrRemoteFetch) {
		t.Error("configuration error should not match ErrRemoteFetch")
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times, want 0", calls.Load())
	}
}

func TestFetchRaw_StripsCarriageReturns(t *testing.T) {
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/snippets/42/raw" {
			t.Errorf("path = %s, want /api/v4/snippets/42/raw", r.URL.Path)
		}
		if got := r.Header.Get("PRIVATE-TOKEN"); got != "test-token" {
			t.Errorf("PRIVATE-TOKEN = %q, want test-token", got)
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("line1\r\nline2\r\n"))
	})

	content, err := client.FetchRaw(context.Background(), settings, "42")
	if err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if content != "line1\nline2\n" {
		t.Errorf("content = %q, want %q", content, "line1\nline2\n")
	}
}

func TestAcceptHeader(t *testing.T) {
	accepts := map[string]string{}
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		accepts[r.URL.Path] = r.Header.Get("Accept")
		if r.URL.Path == "/api/v4/snippets" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte("raw text"))
	})

	if _, err := client.ListSnippets(context.Background(), settings); err != nil {
		t.Fatalf("ListSnippets: %v", err)
	}
	if _, err := client.FetchRaw(context.Background(), settings, "7"); err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if got := accepts["/api/v4/snippets"]; got != "application/json" {
		t.Errorf("list Accept = %q, want application/json", got)
	}
	if got := accepts["/api/v4/snippets/7/raw"]; got == "application/json" {
		t.Errorf("raw Accept = %q, want no JSON preference", got)
	}
}

func TestFetchRaw_NotFound(t *testing.T) {
	client, settings := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"404 Snippet Not Found"}`, http.StatusNotFound)
	})

	_, err := client.FetchRaw(context.Background(), settings, "7")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
	if fetchErr.Op != "fetch raw snippet" {
		t.Errorf("Op = %q", fetchErr.Op)
	}
}

func TestFetchRaw_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(WithTimeout(50 * time.Millisecond))
	start := time.Now()
	_, err := client.FetchRaw(context.Background(), Settings{BaseURL: server.URL, Token: "t"}, "1")
	if !errors.Is(err, ErrRemoteFetch) {
		t.Fatalf("err = %v, want ErrRemoteFetch", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout took %s", elapsed)
	}
}

func TestSettingsResolve(t *testing.T) {
	tests := []struct {
		name          string
		in            Settings
		wantURL       string
		wantDefaulted bool
		wantErr       error
	}{
		{name: "default url", in: Settings{Token: "t"}, wantURL: DefaultBaseURL, wantDefaulted: true},
		{name: "trailing slash", in: Settings{BaseURL: "https://git.example.com/", Token: "t"}, wantURL: "https://git.example.com"},
		{name: "no token", in: Settings{BaseURL: "https://git.example.com"}, wantURL: "https://git.example.com", wantErr: ErrConfigMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted, err := tt.in.Resolve()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", got.BaseURL, tt.wantURL)
			}
			if defaulted != tt.wantDefaulted {
				t.Errorf("defaulted = %v, want %v", defaulted, tt.wantDefaulted)
			}
		})
	}
}
