package cmd

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/journal"
	"github.com/srikarvechalapu/folio/internal/server"
)

func TestRebuildReloadsOpenPages(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	footer := `{"copyright":{"year":2024,"name":"Ada","text":"All rights reserved."},"links":[]}`
	if err := os.WriteFile(filepath.Join(root, "data", "footer.json"), []byte(footer), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Content.Dir = root
	cfg.Site.OutputDir = filepath.Join(root, "public")
	cfg.Render.RevealDelay = -1

	b, err := newBuilder(cfg, nil, nil)
	if err != nil {
		t.Fatalf("newBuilder: %v", err)
	}
	rl := server.NewReloader()
	enableLiveReload(b, rl)

	srv := server.New(server.Config{SiteDir: cfg.Site.OutputDir}, nil)
	srv.MountSite()
	srv.MountReload(rl)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx := context.Background()
	if _, err := b.build(ctx, journal.TriggerServe); err != nil {
		t.Fatalf("initial build: %v", err)
	}
	script, err := os.ReadFile(filepath.Join(cfg.Site.OutputDir, "script.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(script), server.ReloadPath) {
		t.Error("served script.js does not subscribe to live reload")
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+server.ReloadPath, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for rl.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("page never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := b.build(ctx, journal.TriggerWatch); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != server.ReloadMessage {
		t.Errorf("message = %q, want %q", msg, server.ReloadMessage)
	}
}
