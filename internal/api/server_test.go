package api_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

// The server binds a real listener here: the startup path in cmd/server hands
// ListenAndServe the configured address and expects ErrServerClosed after a
// graceful shutdown.
func TestServerListenAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	srv := newTestServer(newMemStore())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(addr) }()

	// Wait until the listener accepts connections.
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/health")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up on %s: %v", addr, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}
