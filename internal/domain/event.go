package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Feed wire format. A frame on the task feed is one of three shapes:
//
//	{"reason": "shift ended"}            -> wipe the board
//	{"reason": "completed", "id": X}     -> remove the row for X
//	{...task object...}                  -> show the task if in progress
//
// Anything else is ignored without error.

const (
	ReasonShiftEnded = "shift ended"
	ReasonCompleted  = "completed"
)

type EventKind int

const (
	EventIgnored EventKind = iota
	EventShiftEnded
	EventTaskCompleted
	EventTaskUpdate
)

// TaskID is opaque row identity, always compared as text. Producers are
// inconsistent about sending ids as JSON numbers or strings, so both
// normalize to their literal text here.
type TaskID string

func (id *TaskID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = TaskID(n.String())
	return nil
}

func (id TaskID) String() string { return string(id) }

// Assignee is the employee record attached to a task on the wire.
type Assignee struct {
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// TaskPayload is a task as it appears in snapshot responses and feed frames.
// Older producers used "name" for the description and "assigned_to" for the
// assignee; both spellings are accepted.
type TaskPayload struct {
	ID          TaskID    `json:"id"`
	Description string    `json:"description"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Employee    *Assignee `json:"employee"`
	AssignedTo  *Assignee `json:"assigned_to"`
}

// Worker returns whichever assignee field is populated, or nil.
func (p *TaskPayload) Worker() *Assignee {
	if p.Employee != nil {
		return p.Employee
	}
	return p.AssignedTo
}

// FeedEvent is a parsed feed frame.
type FeedEvent struct {
	Kind   EventKind
	TaskID TaskID       // set for EventTaskCompleted
	Task   *TaskPayload // set for EventTaskUpdate
}

// ParseFeedEvent classifies one raw frame. It returns an error only for JSON
// that does not parse at all; well-formed frames that fit no shape, including
// type mismatches on known fields, yield EventIgnored.
func ParseFeedEvent(data []byte) (FeedEvent, error) {
	var probe struct {
		Reason string `json:"reason"`
		ID     TaskID `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		if shapeMismatch(err) {
			return FeedEvent{Kind: EventIgnored}, nil
		}
		return FeedEvent{}, err
	}

	switch probe.Reason {
	case ReasonShiftEnded:
		return FeedEvent{Kind: EventShiftEnded}, nil
	case ReasonCompleted:
		return FeedEvent{Kind: EventTaskCompleted, TaskID: probe.ID}, nil
	}
	if probe.Reason != "" {
		return FeedEvent{Kind: EventIgnored}, nil
	}

	var task TaskPayload
	if err := json.Unmarshal(data, &task); err != nil {
		if shapeMismatch(err) {
			return FeedEvent{Kind: EventIgnored}, nil
		}
		return FeedEvent{}, err
	}
	if task.Status != StatusInProgress {
		return FeedEvent{Kind: EventIgnored}, nil
	}
	return FeedEvent{Kind: EventTaskUpdate, Task: &task}, nil
}

// shapeMismatch reports whether the JSON was valid but did not fit the target
// shape.
func shapeMismatch(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
