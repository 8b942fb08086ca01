package colly

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewCollyHTTPClient(t *testing.T) {
	client := NewCollyHTTPClient(10*time.Second, "")

	if client == nil {
		t.Fatal("NewCollyHTTPClient returned nil")
	}

	if client.userAgent != defaultUserAgent {
		t.Errorf("userAgent = %q, want the default", client.userAgent)
	}
}

func TestCollyHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>entrada</html>"))
	}))
	defer server.Close()

	client := NewCollyHTTPClient(10*time.Second, "")
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode(), http.StatusOK)
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	if string(body) != "<html>entrada</html>" {
		t.Errorf("Body = %s", string(body))
	}

	if resp.Header("Content-Type") != "text/html" {
		t.Errorf("Header(Content-Type) = %s", resp.Header("Content-Type"))
	}
}

func TestCollyHTTPClient_Get_UserAgent(t *testing.T) {
	var capturedUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewCollyHTTPClient(10*time.Second, "Mozilla/5.0 (X11; Linux x86_64)")
	ctx := context.Background()

	_, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if capturedUserAgent != "Mozilla/5.0 (X11; Linux x86_64)" {
		t.Errorf("User-Agent = %s", capturedUserAgent)
	}
}

func TestCollyHTTPClient_Get_Non2xxIsAResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such page"))
	}))
	defer server.Close()

	client := NewCollyHTTPClient(10*time.Second, "")
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if resp.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode(), http.StatusNotFound)
	}

	body, _ := io.ReadAll(resp.Body())
	if string(body) != "no such page" {
		t.Errorf("Body = %s", string(body))
	}
}

func TestCollyHTTPClient_Get_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	client := NewCollyHTTPClient(2*time.Second, "")
	ctx := context.Background()

	_, err := client.Get(ctx, server.URL)
	if err == nil {
		t.Error("Get should return error when the server is unreachable")
	}
}

func TestCollyHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewCollyHTTPClient(2*time.Second, "")
	ctx := context.Background()

	_, err := client.Get(ctx, "not a valid url")
	if err == nil {
		t.Error("Get should return error for invalid URL")
	}
}

func TestCollyHTTPClient_Get_CancelledContext(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewCollyHTTPClient(10*time.Second, "")

	_, err := client.Get(ctx, server.URL)
	if err == nil {
		t.Error("Get should return error for a cancelled context")
	}

	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestCollyHTTPClient_Get_BodyReadableTwice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("contenido"))
	}))
	defer server.Close()

	client := NewCollyHTTPClient(10*time.Second, "")
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	first, _ := io.ReadAll(resp.Body())
	second, _ := io.ReadAll(resp.Body())

	if string(first) != "contenido" || !strings.EqualFold(string(first), string(second)) {
		t.Error("buffered body should be readable more than once")
	}
}
