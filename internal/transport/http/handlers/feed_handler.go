package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/taskboard/backend/internal/feed"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

type FeedHandler struct {
	hub    *feed.Hub
	logger *logger.Logger
}

func NewFeedHandler(hub *feed.Hub, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{hub: hub, logger: logger}
}

// Handle keeps one dashboard subscribed to the task feed. The feed is
// strictly server-to-client; inbound frames are drained and dropped, and the
// read loop doubles as disconnect detection.
func (h *FeedHandler) Handle(c *websocket.Conn) {
	h.logger.Infow("feed_connection_opened", "remote", c.RemoteAddr().String())
	h.hub.Register(c)
	defer func() {
		h.hub.Unregister(c)
		c.Close()
		h.logger.Infow("feed_connection_closed", "remote", c.RemoteAddr().String())
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
