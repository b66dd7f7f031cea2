package domain

import "testing"

func TestParseFeedEventShiftEnded(t *testing.T) {
	event, err := ParseFeedEvent([]byte(`{"reason": "shift ended"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != EventShiftEnded {
		t.Fatalf("expected shift-ended event, got kind %d", event.Kind)
	}
}

func TestParseFeedEventCompletedNumericID(t *testing.T) {
	event, err := ParseFeedEvent([]byte(`{"reason": "completed", "id": 1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != EventTaskCompleted {
		t.Fatalf("expected completed event, got kind %d", event.Kind)
	}
	if event.TaskID != "1" {
		t.Fatalf("expected numeric id normalized to \"1\", got %q", event.TaskID)
	}
}

func TestParseFeedEventCompletedStringID(t *testing.T) {
	event, err := ParseFeedEvent([]byte(`{"reason": "completed", "id": "a3f0"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.TaskID != "a3f0" {
		t.Fatalf("expected id a3f0, got %q", event.TaskID)
	}
}

func TestParseFeedEventTaskUpdate(t *testing.T) {
	raw := `{"id": 7, "description": "fix leak", "status": "in_progress", "assigned_to": {"employee_code": "EMP-1", "first_name": "Ivan", "last_name": "Petrov"}}`
	event, err := ParseFeedEvent([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != EventTaskUpdate {
		t.Fatalf("expected task update, got kind %d", event.Kind)
	}
	if event.Task.ID != "7" {
		t.Fatalf("expected id 7, got %q", event.Task.ID)
	}
	worker := event.Task.Worker()
	if worker == nil || worker.EmployeeCode != "EMP-1" {
		t.Fatalf("expected assigned_to to resolve as worker, got %+v", worker)
	}
}

func TestParseFeedEventEmployeeFieldWins(t *testing.T) {
	raw := `{"id": "t1", "status": "in_progress", "employee": {"employee_code": "A"}, "assigned_to": {"employee_code": "B"}}`
	event, err := ParseFeedEvent([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if worker := event.Task.Worker(); worker.EmployeeCode != "A" {
		t.Fatalf("expected employee field to win, got %q", worker.EmployeeCode)
	}
}

func TestParseFeedEventNonInProgressTaskIgnored(t *testing.T) {
	event, err := ParseFeedEvent([]byte(`{"id": 2, "description": "done", "status": "completed"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != EventIgnored {
		t.Fatalf("expected non-in_progress task to be ignored, got kind %d", event.Kind)
	}
}

func TestParseFeedEventUnknownReasonIgnored(t *testing.T) {
	event, err := ParseFeedEvent([]byte(`{"reason": "rebalanced"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != EventIgnored {
		t.Fatalf("expected unknown reason to be ignored, got kind %d", event.Kind)
	}
}

func TestParseFeedEventMalformed(t *testing.T) {
	if _, err := ParseFeedEvent([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed frame")
	}
}

func TestParseFeedEventTypeMismatchIgnored(t *testing.T) {
	// valid JSON that fits no shape must be dropped silently, not treated as
	// a parse failure
	for _, raw := range []string{
		`"just a string"`,
		`[1, 2, 3]`,
		`{"reason": 123}`,
		`{"reason": "completed", "id": {}}`,
	} {
		event, err := ParseFeedEvent([]byte(raw))
		if err != nil {
			t.Fatalf("expected %s ignored without error, got %v", raw, err)
		}
		if event.Kind != EventIgnored {
			t.Fatalf("expected %s ignored, got kind %d", raw, event.Kind)
		}
	}
}
