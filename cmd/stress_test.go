package cmd

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/server"
)

func setupTest(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	srv, err := server.New(server.Config{Port: 0}, cat, logr.Discard())
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestPostStress(t *testing.T) {
	ts := setupTest(t)

	ctx, err := postStress(ts.URL+"/", "CommerceFlowContext", map[string]any{"score": 1.4, "mode": "fragile"})
	if err != nil {
		t.Fatalf("postStress: %v", err)
	}
	if ctx.Name != "CommerceFlowContext" {
		t.Errorf("name = %q, want CommerceFlowContext", ctx.Name)
	}
	if ctx.Score != 1 {
		t.Errorf("score = %v, want 1 (clamped)", ctx.Score)
	}
	if ctx.Mode != "fragile" {
		t.Errorf("mode = %q, want fragile", ctx.Mode)
	}
}

func TestPostStressUnknownContext(t *testing.T) {
	ts := setupTest(t)

	_, err := postStress(ts.URL, "NoSuchContext", map[string]any{"score": 0.5})
	if err == nil {
		t.Fatal("expected error for unknown context")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "NoSuchContext") {
		t.Errorf("error = %q, want the 404 and the server message", err)
	}
}
