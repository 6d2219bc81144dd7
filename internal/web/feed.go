package web

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// A nil CheckOrigin rejects browsers whose Origin host differs from Host.
var upgrader = websocket.Upgrader{}

type feedMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *subscriber) send(m feedMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(m)
}

// Feed fans resolved engagements out to the websocket connections of the
// session that resolved them.
type Feed struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func NewFeed() *Feed {
	return &Feed{subs: map[string]map[*subscriber]struct{}{}}
}

func (f *Feed) add(session string, c *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs[session] == nil {
		f.subs[session] = map[*subscriber]struct{}{}
	}
	f.subs[session][c] = struct{}{}
}

func (f *Feed) remove(session string, c *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs[session], c)
	if len(f.subs[session]) == 0 {
		delete(f.subs, session)
	}
}

// Broadcast sends m to every subscriber of session. Subscribers that fail
// to receive are dropped.
func (f *Feed) Broadcast(session string, m feedMessage) {
	f.mu.Lock()
	targets := make([]*subscriber, 0, len(f.subs[session]))
	for c := range f.subs[session] {
		targets = append(targets, c)
	}
	f.mu.Unlock()

	for _, c := range targets {
		if err := c.send(m); err != nil {
			slog.Debug("feed: dropping subscriber", "err", err)
			f.remove(session, c)
			_ = c.conn.Close()
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(r)
	if id == "" {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &subscriber{conn: conn}
	s.Feed.add(id, c)
	defer func() {
		s.Feed.remove(id, c)
		_ = conn.Close()
	}()
	if err := c.send(feedMessage{Type: "hello", Data: map[string]string{"session": id}}); err != nil {
		return
	}
	// The feed is one-way; reading only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
