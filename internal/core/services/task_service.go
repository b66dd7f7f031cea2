package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type TaskServiceConfig struct {
	TaskRepo     ports.TaskRepository
	EmployeeRepo ports.EmployeeRepository
	ShiftRepo    ports.ShiftRepository
	Publisher    ports.EventPublisher
	Logger       *logger.Logger
}

type taskService struct {
	tasks     ports.TaskRepository
	employees ports.EmployeeRepository
	shifts    ports.ShiftRepository
	publisher ports.EventPublisher
	log       *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	return &taskService{
		tasks:     cfg.TaskRepo,
		employees: cfg.EmployeeRepo,
		shifts:    cfg.ShiftRepo,
		publisher: cfg.Publisher,
		log:       cfg.Logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Description) == "" && strings.TrimSpace(input.Name) == "" {
		return nil, ErrTaskInvalidInput
	}

	difficulty := input.Difficulty
	if difficulty <= 0 {
		difficulty = 1
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Description: input.Description,
		Name:        input.Name,
		Status:      domain.StatusPending,
		Difficulty:  difficulty,
		Urgent:      input.Urgent,
		ShiftID:     input.ShiftID,
	}

	if input.AssignedEmployeeCode != "" {
		employee, err := s.lookupEmployee(ctx, input.AssignedEmployeeCode)
		if err != nil {
			return nil, err
		}
		task.AssignedToID = &employee.ID
		task.AssignedTo = employee
		task.Status = domain.StatusInProgress
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Infow("task_created", "id", task.ID, "status", task.Status, "urgent", task.Urgent)

	if err := s.publisher.PublishTask(ctx, task); err != nil {
		s.log.Errorw("task_created_publish_failed", "id", task.ID, "error", err)
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByStatus(ctx context.Context, status string) ([]domain.Task, error) {
	return s.tasks.GetByStatus(ctx, status)
}

// AssignTask hands a pending task to a named employee and moves it to
// in_progress. The resulting task update lands on the feed so dashboards pick
// the row up immediately.
func (s *taskService) AssignTask(ctx context.Context, taskID, employeeCode string) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.StatusPending {
		return nil, ErrTaskNotAssignable
	}

	employee, err := s.lookupEmployee(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	task.AssignedToID = &employee.ID
	task.AssignedTo = employee
	task.Status = domain.StatusInProgress
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.log.Infow("task_assigned", "id", task.ID, "employee_code", employee.EmployeeCode)

	if err := s.publisher.PublishTask(ctx, task); err != nil {
		s.log.Errorw("task_assigned_publish_failed", "id", task.ID, "error", err)
	}
	return task, nil
}

// AutoAssignTask picks the employee on the active shift's roster with the
// fewest in-progress tasks. Without an active shift there is nobody to hand
// the task to.
func (s *taskService) AutoAssignTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.StatusPending {
		return nil, ErrTaskNotAssignable
	}

	shift, err := s.shifts.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEligibleEmployee
		}
		return nil, err
	}

	var selected *domain.Employee
	var selectedLoad int64
	for i := range shift.Employees {
		candidate := &shift.Employees[i]
		if !candidate.IsActive {
			continue
		}
		load, err := s.tasks.CountAssigned(ctx, candidate.ID, domain.StatusInProgress)
		if err != nil {
			return nil, err
		}
		if selected == nil || load < selectedLoad {
			selected = candidate
			selectedLoad = load
		}
	}
	if selected == nil {
		return nil, ErrNoEligibleEmployee
	}

	task.AssignedToID = &selected.ID
	task.AssignedTo = selected
	task.Status = domain.StatusInProgress
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.log.Infow("task_auto_assigned",
		"id", task.ID,
		"employee_code", selected.EmployeeCode,
		"employee_load", selectedLoad,
	)

	if err := s.publisher.PublishTask(ctx, task); err != nil {
		s.log.Errorw("task_auto_assigned_publish_failed", "id", task.ID, "error", err)
	}
	return task, nil
}

// CompleteTask closes out an assigned in-progress task and announces the
// completion on the feed so dashboards drop the row.
func (s *taskService) CompleteTask(ctx context.Context, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status != domain.StatusInProgress || task.AssignedToID == nil {
		return ErrTaskNotCompletable
	}

	task.Status = domain.StatusCompleted
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}

	s.log.Infow("task_completed", "id", task.ID)

	if err := s.publisher.PublishTaskCompleted(ctx, task.ID); err != nil {
		s.log.Errorw("task_completed_publish_failed", "id", task.ID, "error", err)
	}
	return nil
}

func (s *taskService) lookupEmployee(ctx context.Context, code string) (*domain.Employee, error) {
	employee, err := s.employees.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if !employee.IsActive {
		return nil, ErrEmployeeInactive
	}
	return employee, nil
}
