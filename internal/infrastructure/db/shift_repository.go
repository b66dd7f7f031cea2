package db

import (
	"context"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShiftRepository(db *gorm.DB, log *logger.Logger) ports.ShiftRepository {
	return &shiftRepository{db: db, log: log}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	if err := r.db.WithContext(ctx).Create(shift).Error; err != nil {
		r.log.Errorw("shift_repo_create_failed", "error", err)
		return err
	}
	r.log.Infow("shift_repo_create_ok", "id", shift.ID)
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id uint) (*domain.Shift, error) {
	var shift domain.Shift
	if err := r.db.WithContext(ctx).Preload("Employees").First(&shift, id).Error; err != nil {
		r.log.Errorw("shift_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) GetActive(ctx context.Context) (*domain.Shift, error) {
	var shift domain.Shift
	if err := r.db.WithContext(ctx).Preload("Employees").Where("is_active = ?", true).First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	if err := r.db.WithContext(ctx).Save(shift).Error; err != nil {
		r.log.Errorw("shift_repo_update_failed", "id", shift.ID, "error", err)
		return err
	}
	r.log.Infow("shift_repo_update_ok", "id", shift.ID, "is_active", shift.IsActive)
	return nil
}
