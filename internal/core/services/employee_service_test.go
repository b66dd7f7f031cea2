package services

import (
	"context"
	"testing"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

func TestCreateEmployeeTrimsCodeAndActivates(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, logger.NewNop())

	employee, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		EmployeeCode: "  EMP-9  ",
		FirstName:    "Maria",
		LastName:     "Lopez",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if employee.EmployeeCode != "EMP-9" {
		t.Fatalf("expected trimmed code EMP-9, got %q", employee.EmployeeCode)
	}
	if !employee.IsActive {
		t.Fatal("expected new employee to be active")
	}
	if _, err := repo.GetByCode(context.Background(), "EMP-9"); err != nil {
		t.Fatalf("expected employee persisted: %v", err)
	}
}

func TestCreateEmployeeRequiresCode(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), logger.NewNop())

	if _, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{FirstName: "No"}); err != ErrEmployeeInvalidInput {
		t.Fatalf("expected ErrEmployeeInvalidInput, got %v", err)
	}
}

func TestListActiveEmployeesSkipsInactive(t *testing.T) {
	repo := newFakeEmployeeRepo(
		domain.Employee{ID: 1, EmployeeCode: "EMP-1", IsActive: true},
		domain.Employee{ID: 2, EmployeeCode: "EMP-2", IsActive: false},
	)
	svc := NewEmployeeService(repo, logger.NewNop())

	active, err := svc.ListActiveEmployees(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 || active[0].EmployeeCode != "EMP-1" {
		t.Fatalf("expected only EMP-1 active, got %+v", active)
	}
}
