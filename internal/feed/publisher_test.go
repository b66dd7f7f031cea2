package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

func capturePublished(t *testing.T, publish func(p *Publisher)) string {
	t.Helper()

	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer m.Close()
	rc := redis.NewClient(&redis.Options{Addr: m.Addr()})
	defer rc.Close()

	sub := rc.Subscribe(context.Background(), "task_updates")
	defer sub.Close()
	// force the subscription before publishing
	if _, err := sub.Receive(context.Background()); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	publisher := NewPublisher(rc, "task_updates", logger.NewNop())
	publish(publisher)

	select {
	case msg := <-sub.Channel():
		return msg.Payload
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published frame")
		return ""
	}
}

func TestPublishShiftEndedWireShape(t *testing.T) {
	payload := capturePublished(t, func(p *Publisher) {
		if err := p.PublishShiftEnded(context.Background()); err != nil {
			t.Errorf("publish: %v", err)
		}
	})

	var frame map[string]any
	if err := json.Unmarshal([]byte(payload), &frame); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if frame["reason"] != "shift ended" {
		t.Fatalf("expected reason \"shift ended\", got %v", frame["reason"])
	}
	if _, ok := frame["id"]; ok {
		t.Fatal("shift-ended frame must not carry an id")
	}
}

func TestPublishTaskCompletedWireShape(t *testing.T) {
	payload := capturePublished(t, func(p *Publisher) {
		if err := p.PublishTaskCompleted(context.Background(), "t-9"); err != nil {
			t.Errorf("publish: %v", err)
		}
	})

	var frame map[string]any
	if err := json.Unmarshal([]byte(payload), &frame); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if frame["reason"] != "completed" || frame["id"] != "t-9" {
		t.Fatalf("unexpected completion frame %s", payload)
	}
}

func TestPublishTaskWireShapeParsesAsFeedEvent(t *testing.T) {
	employeeID := uint(3)
	task := &domain.Task{
		ID:           "t-1",
		Description:  "pick order 17",
		Status:       domain.StatusInProgress,
		AssignedToID: &employeeID,
		AssignedTo: &domain.Employee{
			ID:           employeeID,
			EmployeeCode: "EMP-1",
			FirstName:    "Ivan",
			LastName:     "Petrov",
		},
	}

	payload := capturePublished(t, func(p *Publisher) {
		if err := p.PublishTask(context.Background(), task); err != nil {
			t.Errorf("publish: %v", err)
		}
	})

	event, err := domain.ParseFeedEvent([]byte(payload))
	if err != nil {
		t.Fatalf("published frame does not parse: %v", err)
	}
	if event.Kind != domain.EventTaskUpdate {
		t.Fatalf("expected task update frame, got kind %d", event.Kind)
	}
	if event.Task.ID != "t-1" {
		t.Fatalf("expected id t-1, got %q", event.Task.ID)
	}
	worker := event.Task.Worker()
	if worker == nil || worker.EmployeeCode != "EMP-1" {
		t.Fatalf("expected assignee on the wire, got %+v", worker)
	}
}
