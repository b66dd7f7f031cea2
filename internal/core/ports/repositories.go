package ports

import (
	"context"

	"github.com/taskboard/backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByStatus(ctx context.Context, status string) ([]domain.Task, error)
	GetByShift(ctx context.Context, shiftID uint, status string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	CountAssigned(ctx context.Context, employeeID uint, status string) (int64, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	GetActive(ctx context.Context) ([]domain.Employee, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id uint) (*domain.Shift, error)
	GetActive(ctx context.Context) (*domain.Shift, error)
	Update(ctx context.Context, shift *domain.Shift) error
}
