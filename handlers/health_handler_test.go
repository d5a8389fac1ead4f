package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func healthRouter(p Pinger) *mux.Router {
	r := mux.NewRouter()
	NewHealthHandler(p, zap.NewNop()).Register(r)
	return r
}

func TestHola(t *testing.T) {
	rec := doRequest(t, healthRouter(&fakePinger{}), http.MethodGet, "/hola", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("greeting should be plain text, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Hola") {
		t.Fatalf("unexpected greeting: %q", rec.Body.String())
	}
}

func TestHealth_StorageDown(t *testing.T) {
	r := healthRouter(&fakePinger{err: &models.StorageError{Op: "ping", Err: context.DeadlineExceeded}})

	rec := doRequest(t, r, http.MethodGet, "/health", "")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
