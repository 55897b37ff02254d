package notifier

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is the wire shape pushed to a connected client.
type Message struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Hub keeps one live websocket connection per user and pushes check-in
// events to it. Delivery is best effort: a missing or broken connection
// is dropped, never surfaced to the caller.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*websocket.Conn),
	}
}

// Register stores the connection for a user, replacing and closing a
// previous one.
func (h *Hub) Register(uid uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[uid]; ok {
		existing.Close()
	}
	h.connections[uid] = conn
	slog.Info("websocket connection registered", slog.String("uid", uid.String()))
}

// Unregister drops the connection for a user, if it is still the one held.
func (h *Hub) Unregister(uid uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if held, ok := h.connections[uid]; ok && held == conn {
		held.Close()
		delete(h.connections, uid)
		slog.Info("websocket connection unregistered", slog.String("uid", uid.String()))
	}
}

// NotifyCheckIn pushes a check-in event to the user. Fire-and-forget:
// errors are logged and the broken connection is dropped.
func (h *Hub) NotifyCheckIn(uid uuid.UUID, date time.Time) {
	msg := Message{
		Type:   "check_in",
		UserID: uid.String(),
		Date:   date.Format(time.DateOnly),
	}
	if err := h.send(uid, msg); err != nil {
		slog.Debug("check-in notification skipped",
			slog.String("uid", uid.String()),
			slog.String("reason", err.Error()),
		)
	}
}

func (h *Hub) send(uid uuid.UUID, msg Message) error {
	h.mu.RLock()
	conn, ok := h.connections[uid]
	h.mu.RUnlock()
	if !ok {
		return errors.New("user is not connected")
	}
	data, err := sonic.Marshal(msg)
	if err != nil {
		return errors.New("encoding notification error: " + err.Error())
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.Unregister(uid, conn)
		return errors.New("writing notification error: " + err.Error())
	}
	return nil
}
