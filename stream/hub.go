// SPDX-License-Identifier: MIT

package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/blayer/stepper"
)

var (
	// ErrOptionViolation indicates an invalid Option passed to NewHub.
	ErrOptionViolation = errors.New("stream: invalid option")

	// ErrEncode indicates a field that cannot be encoded as JSON (NaN/±Inf).
	ErrEncode = errors.New("stream: frame encoding failed")
)

// DefaultWriteWait bounds a single frame write to one client.
const DefaultWriteWait = 10 * time.Second

// Frame is the message sent to clients. U and V are row-major: U[j][i] is
// the x-velocity at (i*dx, j*dy).
type Frame struct {
	Type string      `json:"type"`
	Step int         `json:"step"`
	NX   int         `json:"nx"`
	NY   int         `json:"ny"`
	U    [][]float64 `json:"u"`
	V    [][]float64 `json:"v"`
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.log = l
		}
	}
}

// WithEvery broadcasts only steps divisible by n (n >= 1).
func WithEvery(n int) Option {
	return func(h *Hub) {
		if n < 1 {
			h.err = fmt.Errorf("%w: every must be >= 1 (got %d)", ErrOptionViolation, n)
			return
		}
		h.every = n
	}
}

// WithWriteWait sets the per-client write deadline (d > 0).
func WithWriteWait(d time.Duration) Option {
	return func(h *Hub) {
		if d <= 0 {
			h.err = fmt.Errorf("%w: write wait must be positive (got %s)", ErrOptionViolation, d)
			return
		}
		h.writeWait = d
	}
}

// Hub fans simulation frames out to websocket clients.
type Hub struct {
	upgrader  websocket.Upgrader
	log       *zap.Logger
	every     int
	writeWait time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	latest  []byte
	closed  bool

	err error
}

var _ stepper.Observer = (*Hub)(nil)

// NewHub returns a Hub broadcasting every step with a no-op logger.
// Origins are not checked.
func NewHub(opts ...Option) (*Hub, error) {
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log:       zap.NewNop(),
		every:     1,
		writeWait: DefaultWriteWait,
		clients:   make(map[*websocket.Conn]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.err != nil {
		return nil, h.err
	}

	return h, nil
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// ServeHTTP upgrades the request, sends the latest frame (if any) and keeps
// the connection registered until the peer goes away. Incoming messages are
// discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "stream closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	connMu := &sync.Mutex{}
	connMu.Lock()
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		connMu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[conn] = connMu
	latest := h.latest
	h.mu.Unlock()

	h.log.Debug("client connected", zap.String("remote", r.RemoteAddr))
	if latest != nil {
		err = h.write(conn, latest)
	}
	connMu.Unlock()
	if err != nil {
		h.log.Warn("initial frame failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		h.drop(conn)
		return
	}

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
	h.log.Debug("client disconnected", zap.String("remote", r.RemoteAddr))
}

// OnStep encodes f as a Frame and writes it to every client when step is a
// multiple of the configured interval. Write failures only drop the client;
// an encoding failure is returned and aborts the run.
func (h *Hub) OnStep(step int, f *stepper.VelocityField) error {
	if step%h.every != 0 {
		return nil
	}
	ny, nx := f.Shape()
	data, err := json.Marshal(Frame{
		Type: "frame",
		Step: step,
		NX:   nx,
		NY:   ny,
		U:    f.U.ToRows(),
		V:    f.V.ToRows(),
	})
	if err != nil {
		return fmt.Errorf("%w: step %d: %w", ErrEncode, step, err)
	}

	h.mu.Lock()
	h.latest = data
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for c, m := range h.clients {
		targets[c] = m
	}
	h.mu.Unlock()

	var failed []*websocket.Conn
	for c, m := range targets {
		m.Lock()
		err = h.write(c, data)
		m.Unlock()
		if err != nil {
			h.log.Warn("client dropped", zap.Int("step", step), zap.String("remote", c.RemoteAddr().String()), zap.Error(err))
			failed = append(failed, c)
		}
	}
	for _, c := range failed {
		h.drop(c)
	}

	return nil
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	var errs []error
	for c := range h.clients {
		errs = append(errs, c.Close())
		delete(h.clients, c)
	}

	return errors.Join(errs...)
}

func (h *Hub) write(c *websocket.Conn, data []byte) error {
	if err := c.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}

	return c.WriteMessage(websocket.TextMessage, data)
}

// drop removes c from the client set and closes it. Safe to call twice.
func (h *Hub) drop(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Close()
}
