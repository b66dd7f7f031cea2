package db

import (
	"context"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepository(db *gorm.DB, log *logger.Logger) ports.EmployeeRepository {
	return &employeeRepository{db: db, log: log}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		r.log.Errorw("employee_repo_create_failed", "code", employee.EmployeeCode, "error", err)
		return err
	}
	r.log.Infow("employee_repo_create_ok", "id", employee.ID, "code", employee.EmployeeCode)
	return nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).Where("employee_code = ?", code).First(&employee).Error; err != nil {
		r.log.Errorw("employee_repo_get_by_code_failed", "code", code, "error", err)
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&employees).Error; err != nil {
		r.log.Errorw("employee_repo_list_active_failed", "error", err)
		return nil, err
	}
	return employees, nil
}
