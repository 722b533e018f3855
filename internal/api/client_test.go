package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://example.com/api")
	if client.baseURL != "http://example.com/api" {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}

	client = NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", client.baseURL)
	}
}

func TestContentTypeHeader(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json content type, got %q", ct)
		}
		json.NewEncoder(w).Encode([]Task{})
	})
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.GetTasks(TaskFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorDetailParsing(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantDetail string
	}{
		{
			name:       "detail body",
			statusCode: http.StatusBadRequest,
			body:       `{"detail": "Title required"}`,
			wantDetail: "Title required",
		},
		{
			name:       "missing body",
			statusCode: http.StatusInternalServerError,
			body:       "",
			wantDetail: genericErrorMessage,
		},
		{
			name:       "unparseable body",
			statusCode: http.StatusBadGateway,
			body:       "<html>upstream timeout</html>",
			wantDetail: genericErrorMessage,
		},
		{
			name:       "empty detail falls back",
			statusCode: http.StatusBadRequest,
			body:       `{"detail": ""}`,
			wantDetail: genericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.CreateTask(CreateTaskRequest{Title: "x", Priority: 2})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, apiErr.StatusCode)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, apiErr.Detail)
			}
		})
	}
}

func TestEmptyBodySuccess(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.DeleteTask(7); err != nil {
		t.Errorf("expected 204 to be a successful void result, got %v", err)
	}
}
