package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *websocket.Conn) {
	t.Helper()
	srv := New()
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWebSocket))
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return srv, ts, conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) cellUpdate {
	t.Helper()
	var u cellUpdate
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return u
}

func TestHandleWebSocketSendsInitialEmptyState(t *testing.T) {
	srv, _, conn := newTestServer(t)
	_ = srv

	// No cells yet, so the initial state sends nothing: the first message
	// read after a mutate_cell request must be that request's own update.
	req := editRequest{Type: "mutate_cell", ID: "A1", Value: "10"}
	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	u := readUpdate(t, conn)
	if u.ID != "A1" || u.Display != "10" {
		t.Fatalf("unexpected update: %+v", u)
	}
}

func TestHandleWebSocketBroadcastsDependents(t *testing.T) {
	_, _, conn := newTestServer(t)

	// broadcastAll fans every edit out over every live cell, so drain by
	// reading exactly liveCells updates and indexing them by ID.
	send := func(id, value string, liveCells int) map[string]cellUpdate {
		t.Helper()
		req := editRequest{Type: "mutate_cell", ID: id, Value: value}
		payload, _ := json.Marshal(req)
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			t.Fatalf("write: %v", err)
		}
		updates := make(map[string]cellUpdate, liveCells)
		for i := 0; i < liveCells; i++ {
			u := readUpdate(t, conn)
			updates[u.ID] = u
		}
		return updates
	}

	send("A1", "10", 1)
	send("B1", "=A1*2", 2)

	updates := send("A1", "5", 2)
	if got := updates["B1"]; got.Display != "10" {
		t.Fatalf("expected B1 to recompute to 10 after A1 changed, got %+v", got)
	}
}

func TestHandleWebSocketClear(t *testing.T) {
	_, _, conn := newTestServer(t)

	send := func(req editRequest) {
		t.Helper()
		payload, _ := json.Marshal(req)
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	send(editRequest{Type: "mutate_cell", ID: "A1", Value: "10"})
	readUpdate(t, conn)

	send(editRequest{Type: "clear"})
	// clear with no live cells broadcasts nothing further; confirm the
	// connection is still healthy by issuing one more edit.
	send(editRequest{Type: "mutate_cell", ID: "A1", Value: "1"})
	u := readUpdate(t, conn)
	if u.ID != "A1" || u.Display != "1" {
		t.Fatalf("unexpected update after clear: %+v", u)
	}
}
