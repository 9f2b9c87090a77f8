// Package server is a peripheral websocket renderer collaborator: it
// exposes the sheet engine's public operations to a browser client over a
// single websocket connection, broadcasting the whole visible grid after
// every edit. It is not part of the formula engine itself; it depends only
// on sheet's public API and never reaches into cell internals.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"

	"sheetengine/sheet"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all for local dev
	},
}

// Server owns one Sheet and fans its state out to every connected client.
// The engine itself is single-threaded and lock-free; the server is its
// one holder and serializes every engine call through sheetMu.
type Server struct {
	sheetMu sync.Mutex
	Sheet   *sheet.Sheet

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// New returns a Server wrapping a fresh, empty sheet.
func New() *Server {
	return &Server{
		Sheet:   sheet.New(),
		clients: make(map[*websocket.Conn]bool),
	}
}

// editRequest is a client-to-server message: mutate a cell, clear the
// sheet, or load a whole grid.
type editRequest struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Value string `json:"value"`
	Sheet string `json:"sheet,omitempty"`
}

// cellUpdate is a server-to-client message describing one cell's display
// state: raw text, rendered text, and the error banner when present.
type cellUpdate struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Raw     string `json:"raw"`
	Display string `json:"display"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	s.sendFullState(conn)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var req editRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			log.Println("bad request:", err)
			continue
		}

		switch req.Type {
		case "mutate_cell":
			s.handleMutate(req)
		case "clear":
			s.sheetMu.Lock()
			s.Sheet.Clear()
			s.sheetMu.Unlock()
			s.broadcastAll()
		case "load":
			s.sheetMu.Lock()
			s.Sheet.Load(req.Sheet, "|")
			s.sheetMu.Unlock()
			s.broadcastAll()
		}
	}
}

func (s *Server) handleMutate(req editRequest) {
	a, err := sheet.ParseAddress(req.ID)
	if err != nil {
		log.Printf("bad address %q: %v", req.ID, err)
		return
	}
	s.sheetMu.Lock()
	s.Sheet.Mutate(a, req.Value)
	s.sheetMu.Unlock()
	// Any cell's recompute can ripple through the whole grid, so the
	// simplest correct thing to broadcast is every live cell (the sheet
	// itself has already limited recompute to the dirty set; this choice
	// only affects what goes out over the wire).
	s.broadcastAll()
}

func (s *Server) sendFullState(conn *websocket.Conn) {
	for _, update := range s.snapshot() {
		if err := conn.WriteJSON(update); err != nil {
			log.Printf("initial state write failed: %v", err)
			return
		}
	}
}

func (s *Server) broadcastAll() {
	updates := s.snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, update := range updates {
		for client := range s.clients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("broadcast write failed: %v", err)
				_ = client.Close()
				delete(s.clients, client)
			}
		}
	}
}

// snapshot reads the whole grid's display state under the sheet lock.
func (s *Server) snapshot() []cellUpdate {
	s.sheetMu.Lock()
	defer s.sheetMu.Unlock()
	updates := make([]cellUpdate, 0, len(s.Sheet.Addresses()))
	for _, a := range s.Sheet.Addresses() {
		updates = append(updates, s.updateFor(a))
	}
	return updates
}

func (s *Server) updateFor(a sheet.Address) cellUpdate {
	raw, _ := s.Sheet.GetRaw(a)
	update := cellUpdate{
		Type:    "cell",
		ID:      a.String(),
		Raw:     raw,
		Display: s.Sheet.GetText(a),
	}
	if _, cerr, ok := s.Sheet.GetComputed(a); ok && cerr != nil {
		update.Error = cerr.Banner()
	}
	return update
}

// Start serves the websocket endpoint and a static asset directory (if
// present) on addr, blocking until the listener fails.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	dir := "assets/sheet"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("static directory %s not found, serving websocket only", dir)
	} else {
		mux.Handle("/", http.FileServer(http.Dir(dir)))
	}
	mux.HandleFunc("/ws", s.HandleWebSocket)

	log.Printf("serving sheet at http://%s", addr)
	return http.ListenAndServe(addr, mux)
}
