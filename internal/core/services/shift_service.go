package services

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type ShiftServiceConfig struct {
	ShiftRepo    ports.ShiftRepository
	TaskRepo     ports.TaskRepository
	EmployeeRepo ports.EmployeeRepository
	Publisher    ports.EventPublisher
	Logger       *logger.Logger
}

type shiftService struct {
	shifts    ports.ShiftRepository
	tasks     ports.TaskRepository
	employees ports.EmployeeRepository
	publisher ports.EventPublisher
	log       *logger.Logger
}

func NewShiftService(cfg ShiftServiceConfig) ports.ShiftService {
	return &shiftService{
		shifts:    cfg.ShiftRepo,
		tasks:     cfg.TaskRepo,
		employees: cfg.EmployeeRepo,
		publisher: cfg.Publisher,
		log:       cfg.Logger,
	}
}

func (s *shiftService) OpenShift(ctx context.Context, employeeCodes []string) (*domain.Shift, error) {
	if len(employeeCodes) == 0 {
		return nil, ErrShiftNoEmployees
	}

	roster := make([]domain.Employee, 0, len(employeeCodes))
	for _, code := range employeeCodes {
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
		roster = append(roster, *employee)
	}

	now := time.Now()
	shift := &domain.Shift{
		Date:      now,
		IsActive:  true,
		StartedAt: &now,
		Employees: roster,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.log.Infow("shift_opened", "id", shift.ID, "employees", len(roster))
	return shift, nil
}

// CloseShift deactivates the shift, returns its unfinished tasks to pending
// and broadcasts the shift-ended signal that wipes every dashboard. Returns
// how many tasks went back to the pool.
func (s *shiftService) CloseShift(ctx context.Context, shiftID uint) (int, error) {
	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrShiftNotFound
		}
		return 0, err
	}
	if !shift.IsActive {
		return 0, ErrShiftAlreadyClosed
	}

	unfinished, err := s.tasks.GetByShift(ctx, shift.ID, domain.StatusInProgress)
	if err != nil {
		return 0, err
	}
	returned := 0
	for i := range unfinished {
		task := &unfinished[i]
		task.Status = domain.StatusPending
		task.AssignedToID = nil
		task.AssignedTo = nil
		if err := s.tasks.Update(ctx, task); err != nil {
			return returned, err
		}
		returned++
	}

	now := time.Now()
	shift.IsActive = false
	shift.ClosedAt = &now
	if err := s.shifts.Update(ctx, shift); err != nil {
		return returned, err
	}

	s.log.Infow("shift_closed", "id", shift.ID, "tasks_returned", returned)

	if err := s.publisher.PublishShiftEnded(ctx); err != nil {
		s.log.Errorw("shift_closed_publish_failed", "id", shift.ID, "error", err)
	}
	return returned, nil
}

func (s *shiftService) ActiveShift(ctx context.Context) (*domain.Shift, error) {
	shift, err := s.shifts.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}
