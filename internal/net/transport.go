package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"LocalSketch/internal/state"
)

const (
	LinkScheme = "sketchpad://"
	WSPath     = "/ws"

	writeWait = 5 * time.Second
)

// Message is what the host sends to viewers. Viewers never send anything
// meaningful back.
type Message struct {
	Type     string         `json:"type"`
	Session  string         `json:"session"`
	Document state.Document `json:"document"`
}

const TypeSnapshot = "snapshot"

// viewer holds the newest undelivered snapshot for one connection. Older
// snapshots are dropped, since each one replaces the whole drawing.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

func (v *viewer) offer(data []byte) {
	select {
	case <-v.send:
	default:
	}
	select {
	case v.send <- data:
	default:
	}
}

func (v *viewer) writePump() {
	for data := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", v.conn.RemoteAddr(), err)
			v.conn.Close()
			return
		}
	}
}

// Hub is used by the HOST to push drawing snapshots to read-only viewers.
type Hub struct {
	session  string
	upgrader websocket.Upgrader
	viewers  map[*viewer]bool
	last     []byte
	mu       sync.Mutex

	synced   bool
	revision uint64
}

func NewHub() *Hub {
	return &Hub{
		session: uuid.NewString(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*viewer]bool),
	}
}

func (h *Hub) Session() string { return h.session }

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request and keeps the viewer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, 1)}

	h.mu.Lock()
	h.viewers[v] = true
	if h.last != nil {
		v.offer(h.last)
	}
	h.mu.Unlock()
	log.Printf("[SHARE] Viewer connected from %s", conn.RemoteAddr())

	go v.writePump()
	defer h.remove(v)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("[SHARE] Viewer %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.viewers[v] {
		delete(h.viewers, v)
		close(v.send)
		v.conn.Close()
	}
}

// Publish sends doc to every viewer and remembers it for late joiners. It
// never blocks on the network.
func (h *Hub) Publish(doc state.Document) error {
	data, err := json.Marshal(Message{Type: TypeSnapshot, Session: h.session, Document: doc})
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for v := range h.viewers {
		v.offer(data)
	}
	return nil
}

// Source is a drawing the hub can follow, normally a *state.Pad.
type Source interface {
	Revision() uint64
	Snapshot() state.Document
}

// Sync publishes src's drawing at width x height unless it is unchanged
// since the previous Sync. It reports whether anything was sent.
func (h *Hub) Sync(src Source, width, height int) (bool, error) {
	rev := src.Revision()
	h.mu.Lock()
	unchanged := h.synced && h.revision == rev
	h.mu.Unlock()
	if unchanged {
		return false, nil
	}

	doc := src.Snapshot()
	doc.Width, doc.Height = width, height
	if err := h.Publish(doc); err != nil {
		return false, err
	}
	h.mu.Lock()
	h.synced, h.revision = true, rev
	h.mu.Unlock()
	return true, nil
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	viewers := make([]*viewer, 0, len(h.viewers))
	for v := range h.viewers {
		viewers = append(viewers, v)
	}
	h.mu.Unlock()
	for _, v := range viewers {
		h.remove(v)
	}
}

// ShareLink builds the link a viewer is started with.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s:%d", LinkScheme, host, port)
}

// ViewerURL turns a share link (or a bare host:port) into a websocket URL.
func ViewerURL(link string) (string, error) {
	addr := strings.TrimSuffix(strings.TrimPrefix(link, LinkScheme), "/")
	if addr == "" || strings.Contains(addr, "/") {
		return "", fmt.Errorf("invalid share link %q", link)
	}
	return "ws://" + addr + WSPath, nil
}

// Follow connects to a host and calls onDoc for every snapshot until ctx is
// cancelled or the host goes away. A cancelled ctx returns nil.
func Follow(ctx context.Context, url string, onDoc func(state.Document)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				return nil
			}
			return fmt.Errorf("reading from %s: %w", url, err)
		}
		if msg.Type != TypeSnapshot {
			continue
		}
		onDoc(msg.Document)
	}
}
