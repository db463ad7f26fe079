package transport

import (
	"net/http"
	"net/url"
	"testing"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	if len(req.Header) != 0 {
		t.Errorf("Expected no headers, got %d", len(req.Header))
	}
}

// TestHeaderAuth tests custom header authentication.
func TestHeaderAuth(t *testing.T) {
	auth := &HeaderAuth{Header: "X-PAN-KEY"}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	if got := req.Header.Get("X-PAN-KEY"); got != "test-api-key" {
		t.Errorf("Expected X-PAN-KEY header 'test-api-key', got '%s'", got)
	}
}

// TestQueryAuth tests query parameter authentication.
func TestQueryAuth(t *testing.T) {
	auth := &QueryAuth{Param: "key"}

	reqURL, _ := url.Parse("https://fw.example.com/api/?type=config&action=get")
	req := &http.Request{URL: reqURL, Header: make(http.Header)}

	auth.Apply(req, "LUFRPT1")

	query := req.URL.Query()
	if query.Get("key") != "LUFRPT1" {
		t.Errorf("Expected query param 'key=LUFRPT1', got '%s'", req.URL.RawQuery)
	}
	if query.Get("type") != "config" || query.Get("action") != "get" {
		t.Errorf("Expected existing params to be preserved, got '%s'", req.URL.RawQuery)
	}

	// nil URL must not panic
	auth.Apply(&http.Request{Header: make(http.Header)}, "LUFRPT1")
}
