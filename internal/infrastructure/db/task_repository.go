package db

import (
	"context"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "id", task.ID, "error", err)
		return err
	}
	r.log.Infow("task_repo_create_ok", "id", task.ID, "status", task.Status)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).Preload("AssignedTo").Where("id = ?", id).First(&task).Error; err != nil {
		r.log.Errorw("task_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByStatus(ctx context.Context, status string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_by_status_failed", "status", status, "error", err)
		return nil, err
	}
	r.log.Infow("task_repo_list_by_status_ok", "status", status, "count", len(tasks))
	return tasks, nil
}

func (r *taskRepository) GetByShift(ctx context.Context, shiftID uint, status string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Where("shift_id = ? AND status = ?", shiftID, status).
		Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_by_shift_failed", "shift_id", shiftID, "status", status, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		r.log.Errorw("task_repo_update_failed", "id", task.ID, "error", err)
		return err
	}
	r.log.Infow("task_repo_update_ok", "id", task.ID, "status", task.Status)
	return nil
}

func (r *taskRepository) CountAssigned(ctx context.Context, employeeID uint, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("assigned_to_id = ? AND status = ?", employeeID, status).
		Count(&count).Error; err != nil {
		r.log.Errorw("task_repo_count_assigned_failed", "employee_id", employeeID, "error", err)
		return 0, err
	}
	return count, nil
}
