package changes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Subscriber is the write side of a client connection. *websocket.Conn
// satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
}

// writeWait bounds each write so one stalled client cannot hold up the rest.
const writeWait = 10 * time.Second

// Hub fans changes out to the connections of the user they belong to.
type Hub struct {
	clients   map[string]map[Subscriber]bool
	broadcast chan Change
	mu        sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]map[Subscriber]bool),
		broadcast: make(chan Change, 100),
	}
}

// Run delivers published changes until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.broadcast:
			h.deliver(c)
		}
	}
}

// deliver writes c to a snapshot of the owner's subscribers. Writes happen
// outside the lock, so Register and Unregister never wait on a slow client.
func (h *Hub) deliver(c Change) {
	h.mu.Lock()
	subs := make([]Subscriber, 0, len(h.clients[c.UserID]))
	for sub := range h.clients[c.UserID] {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		err := sub.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = sub.WriteJSON(c)
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":  c.UserID,
				"conn_ptr": fmt.Sprintf("%p", sub),
			}).Info("Dropping change subscriber after failed write.")
			h.Unregister(c.UserID, sub)
		}
	}
}

func (h *Hub) Register(userID string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; !ok {
		h.clients[userID] = make(map[Subscriber]bool)
	}
	h.clients[userID][sub] = true
	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"conn_ptr": fmt.Sprintf("%p", sub),
	}).Debug("Change subscriber registered.")
}

func (h *Hub) Unregister(userID string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(userID, sub)
}

func (h *Hub) remove(userID string, sub Subscriber) {
	if subs, ok := h.clients[userID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.clients, userID)
		}
	}
}

// Subscribers reports how many connections userID has open.
func (h *Hub) Subscribers(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userID])
}

// Publish queues c for delivery. A full queue drops the change.
func (h *Hub) Publish(c Change) {
	select {
	case h.broadcast <- c:
	default:
		logrus.WithField("user_id", c.UserID).Warn("Change broadcast channel full, dropping message.")
	}
}
