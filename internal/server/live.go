package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/ddo-deck/internal/deck"
	"github.com/ziadkadry99/ddo-deck/internal/dom"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	maxMessage   = 64 << 10
)

// Message types on the live socket.
const (
	MsgHello   = "hello"
	MsgGesture = "gesture"
	MsgPatches = "patches"
	MsgError   = "error"
	MsgReload  = "reload"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type    string        `json:"type"`
	Gesture *deck.Gesture `json:"gesture,omitempty"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type    string      `json:"type"`
	Session string      `json:"session_id,omitempty"`
	Patches []dom.Patch `json:"patches,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type liveConn struct {
	sess   *deck.Session
	send   func(serverMessage) bool
	cancel context.CancelFunc
}

// registry tracks the connected sessions for broadcasts.
type registry struct {
	mu    sync.Mutex
	conns map[string]*liveConn
}

func newRegistry() *registry {
	return &registry{conns: make(map[string]*liveConn)}
}

func (r *registry) add(id string, c *liveConn) {
	r.mu.Lock()
	r.conns[id] = c
	r.mu.Unlock()
}

func (r *registry) remove(id string) {
	r.mu.Lock()
	delete(r.conns, id)
	r.mu.Unlock()
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

func (r *registry) snapshot() []*liveConn {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*liveConn, 0, len(r.conns))
	for _, c := range r.conns {
		out = append(out, c)
	}
	return out
}

// refresh queues a stress grid re-render on every session.
func (r *registry) refresh(ctx context.Context) {
	for _, c := range r.snapshot() {
		_ = c.sess.Refresh(ctx)
	}
}

func (r *registry) reload() {
	for _, c := range r.snapshot() {
		c.send(serverMessage{Type: MsgReload})
	}
}

func (r *registry) closeAll() {
	for _, c := range r.snapshot() {
		c.cancel()
	}
}

// handleLive binds one browser tab to a fresh session. The session owns its
// own copy of the page and streams back the patches of every gesture.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	b := s.currentBuilder()
	page, err := b.Page()
	if err != nil {
		s.log.Error(err, "building session page")
		http.Error(w, "building page failed", http.StatusInternalServerError)
		return
	}
	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		s.log.Error(err, "parsing session page")
		http.Error(w, "building page failed", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, "websocket upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	out := make(chan serverMessage, 32)
	send := func(m serverMessage) bool {
		select {
		case out <- m:
			return true
		case <-ctx.Done():
			return false
		}
	}

	id := uuid.NewString()
	log := s.log.WithValues("session", id)
	opts := s.cfg.Deck
	opts.Log = s.log.WithName("session")
	sess := deck.NewSession(id, doc, b.Renderer(), s.stress, opts, func(p []dom.Patch) {
		send(serverMessage{Type: MsgPatches, Patches: p})
	})
	defer sess.Close()

	s.live.add(id, &liveConn{sess: sess, send: send, cancel: cancel})
	defer s.live.remove(id)
	log.V(1).Info("live session connected", "remote", r.RemoteAddr)

	send(serverMessage{Type: MsgHello, Session: id})
	// The stress model may have moved since the tab fetched its page.
	_ = sess.Sync(ctx)

	g.Go(func() error {
		if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error { return writeLoop(ctx, conn, out) })
	g.Go(func() error {
		// Unblocks the reader below.
		<-ctx.Done()
		conn.Close()
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return s.readLoop(ctx, conn, sess, send)
	})

	if err := g.Wait(); err != nil {
		log.Error(err, "live session failed")
	}
	log.V(1).Info("live session disconnected")
}

func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, sess *deck.Session, send func(serverMessage) bool) error {
	conn.SetReadLimit(maxMessage)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.V(1).Info("websocket read", "error", err.Error())
			}
			return nil
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			send(serverMessage{Type: MsgError, Error: "invalid message format"})
			continue
		}

		switch msg.Type {
		case MsgGesture:
			if msg.Gesture == nil {
				send(serverMessage{Type: MsgError, Error: "gesture is required"})
				continue
			}
			if err := sess.Dispatch(ctx, *msg.Gesture); err != nil {
				return nil
			}
		default:
			send(serverMessage{Type: MsgError, Error: "unknown message type: " + msg.Type})
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, out <-chan serverMessage) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return nil
		case m := <-out:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(m); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}
