package dashboard

import (
	"testing"

	"github.com/taskboard/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestListener(board *Board, log *logger.Logger) *FeedListener {
	return NewFeedListener(FeedListenerConfig{
		URL:    "ws://localhost/ws/tasks/",
		Board:  board,
		Logger: log,
	})
}

func TestFeedLifecycleScenario(t *testing.T) {
	board := NewBoard()
	listener := newTestListener(board, logger.NewNop())

	// seed an older row so the update has something to land on top of
	board.Append(Row{ID: "0", Description: "sweep floor", Status: "in_progress"})

	listener.handleFrame([]byte(`{"id": 1, "description": "fix leak", "status": "in_progress"}`))

	rows := board.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after update, got %d", len(rows))
	}
	if rows[0].ID != "1" {
		t.Fatalf("expected new row at the top, got id %q", rows[0].ID)
	}
	if rows[0].Class != ClassAssigned {
		t.Fatalf("expected in_progress row classified assigned, got %q", rows[0].Class)
	}
	if rows[0].Source != SourceWebSocket {
		t.Fatalf("expected WebSocket source label, got %q", rows[0].Source)
	}

	listener.handleFrame([]byte(`{"reason": "completed", "id": 1}`))
	for _, row := range board.Rows() {
		if row.ID == "1" {
			t.Fatal("expected row for id 1 removed after completion")
		}
	}
	if board.Len() != 1 {
		t.Fatalf("expected 1 row left, got %d", board.Len())
	}

	listener.handleFrame([]byte(`{"reason": "shift ended"}`))
	if board.Len() != 0 {
		t.Fatalf("expected empty board after shift end, got %d rows", board.Len())
	}
}

func TestFeedMalformedFrameLoggedOnceAndDropped(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	board := NewBoard()
	board.Append(Row{ID: "1"})
	listener := newTestListener(board, log)

	listener.handleFrame([]byte(`{broken`))

	if board.Len() != 1 {
		t.Fatalf("expected board untouched by malformed frame, got %d rows", board.Len())
	}
	if got := logs.Len(); got != 1 {
		t.Fatalf("expected exactly one error log, got %d", got)
	}
}

func TestFeedUnknownShapeIgnoredSilently(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	board := NewBoard()
	board.Append(Row{ID: "1"})
	listener := newTestListener(board, log)

	listener.handleFrame([]byte(`{"reason": "lunch break"}`))
	listener.handleFrame([]byte(`{"id": 9, "status": "pending", "description": "later"}`))

	if board.Len() != 1 {
		t.Fatalf("expected board untouched by ignorable frames, got %d rows", board.Len())
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no error logs for ignorable frames, got %d", logs.Len())
	}
}

func TestFeedCompletionMissIsNoop(t *testing.T) {
	board := NewBoard()
	board.Append(Row{ID: "2"})
	listener := newTestListener(board, logger.NewNop())

	listener.handleFrame([]byte(`{"reason": "completed", "id": 404}`))
	if board.Len() != 1 {
		t.Fatalf("expected no-op for unmatched completion, got %d rows", board.Len())
	}
}

func TestFeedOnChangeFiresOnlyOnMutation(t *testing.T) {
	board := NewBoard()
	changes := 0
	listener := NewFeedListener(FeedListenerConfig{
		URL:    "ws://localhost/ws/tasks/",
		Board:  board,
		Logger: logger.NewNop(),
		Handlers: FeedHandlers{
			OnChange: func() { changes++ },
		},
	})

	listener.handleFrame([]byte(`{"id": 1, "status": "in_progress", "description": "x"}`))
	listener.handleFrame([]byte(`{"reason": "completed", "id": 99}`)) // miss
	listener.handleFrame([]byte(`{"reason": "completed", "id": 1}`))
	listener.handleFrame([]byte(`{bad json`))

	if changes != 2 {
		t.Fatalf("expected 2 change callbacks, got %d", changes)
	}
}
