package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPost(t *testing.T) {
	t.Run("sends JSON body and headers", func(t *testing.T) {
		var gotBody []byte
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 0})
		body, status, err := c.Post(context.Background(), srv.URL,
			map[string]string{"hello": "world"},
			map[string]string{"Authorization": "Bearer token"})
		if err != nil {
			t.Fatalf("Post: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status: got %d, want 200", status)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body: got %s", body)
		}
		if gotAuth != "Bearer token" {
			t.Errorf("auth header: got %q", gotAuth)
		}
		var sent map[string]string
		if err := json.Unmarshal(gotBody, &sent); err != nil || sent["hello"] != "world" {
			t.Errorf("request body: got %s", gotBody)
		}
	})

	t.Run("retries resend the full body on 5xx", func(t *testing.T) {
		var calls atomic.Int32
		var lastBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastBody, _ = io.ReadAll(r.Body)
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
		_, status, err := c.Post(context.Background(), srv.URL, map[string]string{"k": "v"}, nil)
		if err != nil {
			t.Fatalf("Post: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status: got %d, want 200", status)
		}
		if calls.Load() != 3 {
			t.Errorf("attempts: got %d, want 3", calls.Load())
		}
		if string(lastBody) != `{"k":"v"}` {
			t.Errorf("retried body: got %s", lastBody)
		}
	})

	t.Run("exhausted retries return the last status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
		_, status, err := c.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if status != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", status)
		}
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 5, RetryWait: time.Hour})
		if _, _, err := c.Get(ctx, srv.URL, nil); err == nil {
			t.Error("Get: expected context error")
		}
	})
}
