package repository

import (
	"context"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
)

// TimeSlotRepository acesso a dados de faixas horárias
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	GetByID(ctx context.Context, id string) (*model.TimeSlot, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.TimeSlot, error)
	ListAll(ctx context.Context) ([]model.TimeSlot, error)
	Update(ctx context.Context, slot *model.TimeSlot) error
	Delete(ctx context.Context, id string) error
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo cria a implementação de TimeSlotRepository
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) Create(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepo) GetByID(ctx context.Context, id string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) GetByIDs(ctx context.Context, ids []string) ([]model.TimeSlot, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) ListAll(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Order("start_time ASC, label ASC").
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) Update(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *timeSlotRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TimeSlot{}).Error
}
