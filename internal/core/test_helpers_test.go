package core

import (
	"bufio"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testOptions() Options {
	return Options{
		MaxClients:  8,
		MaxNameLen:  32,
		DefaultRoom: "Common",
		OutboxSize:  32,
		Color:       false,
		EchoCommand: true,
	}
}

// testEval recognizes just enough arithmetic for the session tests and
// counts how often it is invoked.
type testEval struct {
	calls int
}

func (e *testEval) evaluate(expr string) (float64, error) {
	e.calls++
	switch expr {
	case "2+2", "2 + 2":
		return 4, nil
	default:
		return 0, errors.New("cannot evaluate")
	}
}

func newTestHub(opts Options, eval Evaluator) *Hub {
	if eval == nil {
		eval = (&testEval{}).evaluate
	}
	logger := zerolog.Nop()
	return NewHub(opts, eval, &logger)
}

// testConn is the client end of a piped session with line helpers.
type testConn struct {
	net.Conn
	r *bufio.Reader
}

// dialHub starts a session against the hub over an in-memory pipe.
func dialHub(t *testing.T, h *Hub) *testConn {
	t.Helper()
	server, client := net.Pipe()
	go h.HandleConn(server)
	return &testConn{Conn: client, r: bufio.NewReader(client)}
}

func (tc *testConn) sendLine(t *testing.T, line string) {
	t.Helper()
	_ = tc.SetWriteDeadline(time.Now().Add(2 * time.Second))
	if _, err := tc.Write([]byte(line + "\n")); err != nil {
		t.Fatalf("send %q: %v", line, err)
	}
}

func (tc *testConn) readLine(t *testing.T) string {
	t.Helper()
	_ = tc.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := tc.r.ReadString('\n')
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	return strings.TrimRight(line, "\r\n")
}

func (tc *testConn) expectLine(t *testing.T, want string) {
	t.Helper()
	if got := tc.readLine(t); got != want {
		t.Fatalf("got line %q, want %q", got, want)
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
