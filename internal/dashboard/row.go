package dashboard

import (
	"strings"

	"github.com/taskboard/backend/internal/domain"
)

// Placeholder shown when a task has no usable description or assignee.
const Placeholder = "-"

// NewRow derives a display row from a task payload. Description falls back
// to the name field and then the placeholder; the assignee cell is the
// formatted employee record or the placeholder.
func NewRow(task *domain.TaskPayload, source Source) Row {
	worker := task.Worker()
	return Row{
		ID:          task.ID.String(),
		Description: displayDescription(task),
		Status:      task.Status,
		Assignee:    FormatAssignee(worker),
		Class:       Classify(task.Status, worker != nil),
		Source:      source,
	}
}

func displayDescription(task *domain.TaskPayload) string {
	if s := strings.TrimSpace(task.Description); s != "" {
		return s
	}
	if s := strings.TrimSpace(task.Name); s != "" {
		return s
	}
	return Placeholder
}

// FormatAssignee renders an employee record as the non-empty parts of
// "first last code" joined by single spaces, or the placeholder when the
// record is absent or blank.
func FormatAssignee(a *domain.Assignee) string {
	if a == nil {
		return Placeholder
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{a.FirstName, a.LastName, a.EmployeeCode} {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " ")
}

// Classify marks a row "assigned" when its task is in progress or has an
// assignee, otherwise "new". Purely presentational.
func Classify(status string, hasAssignee bool) RowClass {
	if status == domain.StatusInProgress || hasAssignee {
		return ClassAssigned
	}
	return ClassNew
}
