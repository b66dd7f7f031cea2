package dashboard

import (
	"context"
	"errors"

	"github.com/fasthttp/websocket"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

// FeedHandlers are the named lifecycle slots of a feed connection. Any slot
// may be nil.
type FeedHandlers struct {
	OnOpen  func()
	OnError func(error)
	OnClose func(error)
	// OnChange fires after every frame that mutated the board.
	OnChange func()
}

// FeedListener holds one persistent WebSocket subscription to the task feed
// and reconciles each inbound frame onto the board. There is no reconnect:
// once the connection drops the feed stays down until the dashboard is
// restarted. The listener never sends outbound frames.
type FeedListener struct {
	url      string
	board    *Board
	log      *logger.Logger
	handlers FeedHandlers
	conn     *websocket.Conn
}

type FeedListenerConfig struct {
	URL      string
	Board    *Board
	Logger   *logger.Logger
	Handlers FeedHandlers
}

func NewFeedListener(cfg FeedListenerConfig) *FeedListener {
	return &FeedListener{
		url:      cfg.URL,
		board:    cfg.Board,
		log:      cfg.Logger,
		handlers: cfg.Handlers,
	}
}

// Connect dials the feed endpoint.
func (l *FeedListener) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		if l.handlers.OnError != nil {
			l.handlers.OnError(err)
		}
		return err
	}
	l.conn = conn
	l.log.Infow("feed_connected", "url", l.url)
	if l.handlers.OnOpen != nil {
		l.handlers.OnOpen()
	}
	return nil
}

// Listen consumes frames until the connection closes or the context is
// cancelled. It always returns after the connection is gone; the caller
// decides what a dead feed means for the rest of the process.
func (l *FeedListener) Listen(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			l.conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := l.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				l.log.Errorw("feed_read_failed", "error", err)
				if l.handlers.OnError != nil {
					l.handlers.OnError(err)
				}
			}
			l.log.Infow("feed_closed")
			if l.handlers.OnClose != nil {
				l.handlers.OnClose(err)
			}
			return
		}
		l.handleFrame(data)
	}
}

// handleFrame applies one inbound frame to the board. A frame that fails to
// parse is logged once and dropped without touching any row.
func (l *FeedListener) handleFrame(data []byte) {
	event, err := domain.ParseFeedEvent(data)
	if err != nil {
		l.log.Errorw("feed_frame_parse_failed", "error", err, "bytes", len(data))
		return
	}

	mutated := false
	switch event.Kind {
	case domain.EventShiftEnded:
		l.board.Clear()
		l.log.Infow("feed_shift_ended_board_cleared")
		mutated = true
	case domain.EventTaskCompleted:
		mutated = l.board.RemoveByID(event.TaskID.String())
		l.log.Infow("feed_task_completed", "id", event.TaskID, "removed", mutated)
	case domain.EventTaskUpdate:
		l.board.Prepend(NewRow(event.Task, SourceWebSocket))
		l.log.Infow("feed_task_update", "id", event.Task.ID)
		mutated = true
	default:
		// unknown but well-formed shapes are silently ignored
		return
	}

	if mutated && l.handlers.OnChange != nil {
		l.handlers.OnChange()
	}
}

// Close tears the connection down.
func (l *FeedListener) Close() error {
	if l.conn == nil {
		return errors.New("feed: not connected")
	}
	return l.conn.Close()
}
