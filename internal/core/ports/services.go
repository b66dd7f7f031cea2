package ports

import (
	"context"

	"github.com/taskboard/backend/internal/domain"
)

type CreateTaskInput struct {
	Description          string
	Name                 string
	Difficulty           int
	Urgent               bool
	ShiftID              *uint
	AssignedEmployeeCode string
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Task, error)
	AssignTask(ctx context.Context, taskID, employeeCode string) (*domain.Task, error)
	AutoAssignTask(ctx context.Context, taskID string) (*domain.Task, error)
	CompleteTask(ctx context.Context, taskID string) error
}

type CreateEmployeeInput struct {
	EmployeeCode string
	FirstName    string
	LastName     string
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

type ShiftService interface {
	OpenShift(ctx context.Context, employeeCodes []string) (*domain.Shift, error)
	CloseShift(ctx context.Context, shiftID uint) (int, error)
	ActiveShift(ctx context.Context) (*domain.Shift, error)
}

// EventPublisher pushes feed events toward connected dashboards.
type EventPublisher interface {
	PublishTask(ctx context.Context, task *domain.Task) error
	PublishTaskCompleted(ctx context.Context, taskID string) error
	PublishShiftEnded(ctx context.Context) error
}
