package services

import (
	"context"
	"strings"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

type employeeService struct {
	employees ports.EmployeeRepository
	log       *logger.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, log *logger.Logger) ports.EmployeeService {
	return &employeeService{employees: employees, log: log}
}

func (s *employeeService) CreateEmployee(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if strings.TrimSpace(input.EmployeeCode) == "" {
		return nil, ErrEmployeeInvalidInput
	}

	employee := &domain.Employee{
		EmployeeCode: strings.TrimSpace(input.EmployeeCode),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.log.Infow("employee_created", "code", employee.EmployeeCode)
	return employee, nil
}

func (s *employeeService) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.GetActive(ctx)
}
