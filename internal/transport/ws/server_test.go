package ws

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vretko/linechat-server/internal/core"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	opts := core.DefaultOptions()
	opts.Color = false

	logger := zerolog.Nop()
	hub := core.NewHub(opts, func(string) (float64, error) { return 0, nil }, &logger)

	srv := NewServer(":0", time.Second, hub, &logger)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := startServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("got %d %q, want 200 ok", resp.StatusCode, body)
	}
}

func TestWebsocketSpeaksLineProtocol(t *testing.T) {
	ts := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/chat"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	nc := websocket.NetConn(ctx, conn, websocket.MessageText)
	r := bufio.NewReader(nc)

	line, err := r.ReadString('\n')
	if err != nil {
		t.Fatalf("read join: %v", err)
	}
	if got := strings.TrimRight(line, "\r\n"); got != "JOIN, WELCOME 0" {
		t.Fatalf("got %q, want join announcement", got)
	}

	if _, err := nc.Write([]byte("\\ping\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	line, err = r.ReadString('\n')
	if err != nil {
		t.Fatalf("read pong: %v", err)
	}
	if got := strings.TrimRight(line, "\r\n"); got != "PONG" {
		t.Fatalf("got %q, want PONG", got)
	}
}
