package feed

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

// Client is the write side of one connected dashboard. *websocket.Conn
// satisfies it.
type Client interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub keeps the set of connected dashboards and relays every frame from the
// Redis feed channel to all of them. A client whose write fails is dropped;
// there is no per-client queueing.
type Hub struct {
	log *logger.Logger

	mu      sync.Mutex
	clients map[Client]struct{}
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[Client]struct{}),
	}
}

func (h *Hub) Register(c Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Infow("feed_client_registered", "clients", count)
}

func (h *Hub) Unregister(c Client) {
	h.mu.Lock()
	delete(h.clients, c)
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Infow("feed_client_unregistered", "clients", count)
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes one text frame to every registered client, dropping any
// client whose write fails.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warnw("feed_client_write_failed", "error", err)
			delete(h.clients, c)
		}
	}
}

// Run subscribes to the feed channel and broadcasts every payload until the
// context is cancelled. A dropped pub/sub connection is re-established after
// a short pause.
func (h *Hub) Run(ctx context.Context, rc *redis.Client, channel string) {
	for {
		sub := rc.Subscribe(ctx, channel)
		ch := sub.Channel()
	receive:
		for {
			select {
			case <-ctx.Done():
				sub.Close()
				return
			case msg, ok := <-ch:
				if !ok {
					break receive
				}
				h.Broadcast([]byte(msg.Payload))
			}
		}
		sub.Close()
		if ctx.Err() != nil {
			return
		}
		h.log.Errorw("feed_pubsub_closed_reconnecting", "channel", channel)
		time.Sleep(time.Second)
	}
}
