package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/webmanifest/pkg/manifest"
)

func TestRouterServesManifest(t *testing.T) {
	srv := httptest.NewServer(newRouter(log.New(io.Discard), "My Cool Application", siteJSON))
	defer srv.Close()

	resp, err := http.Get(srv.URL + defaultManifestPath)
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != manifest.MediaType {
		t.Errorf("Content-Type = %q, want %q", got, manifest.MediaType)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != siteJSON {
		t.Errorf("body = %s, want %s", body, siteJSON)
	}
}

func TestRouterLogsRequests(t *testing.T) {
	var logs bytes.Buffer
	h := newRouter(newLogger(&logs, log.DebugLevel), "App", "{}")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, defaultManifestPath, nil))

	for _, want := range []string{"Request", defaultManifestPath, "status=200"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output missing %q: %q", want, logs.String())
		}
	}
}

func TestRouterIndexPage(t *testing.T) {
	h := newRouter(log.New(io.Discard), "Tom & Jerry <3", "{}")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, manifest.LinkTag(defaultManifestPath)) {
		t.Errorf("index page missing link tag:\n%s", body)
	}
	if !strings.Contains(body, "<title>Tom &amp; Jerry &lt;3</title>") {
		t.Errorf("index page title not escaped:\n%s", body)
	}
}

func TestRouterHeadAndUnknown(t *testing.T) {
	h := newRouter(log.New(io.Discard), "App", "{}")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, defaultManifestPath, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("HEAD status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want 404", rec.Code)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}

	logger := log.New(io.Discard)
	srv := &http.Server{Handler: newRouter(logger, "App", "{}")}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, logger) }()

	resp, err := http.Get("http://" + ln.Addr().String() + defaultManifestPath)
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("serve() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve() did not return after cancel")
	}
}
