package repository

import (
	"context"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
)

// HospitalRepository acesso a dados de hospitais
type HospitalRepository interface {
	Create(ctx context.Context, hospital *model.Hospital) error
	GetByID(ctx context.Context, id string) (*model.Hospital, error)
	List(ctx context.Context, offset, limit int) ([]model.Hospital, int64, error)
	Update(ctx context.Context, hospital *model.Hospital) error
	Delete(ctx context.Context, id string) error
}

type hospitalRepo struct {
	db *gorm.DB
}

// NewHospitalRepo cria a implementação de HospitalRepository
func NewHospitalRepo(db *gorm.DB) HospitalRepository {
	return &hospitalRepo{db: db}
}

func (r *hospitalRepo) Create(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepo) GetByID(ctx context.Context, id string) (*model.Hospital, error) {
	var hospital model.Hospital
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hospital).Error
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepo) List(ctx context.Context, offset, limit int) ([]model.Hospital, int64, error) {
	var hospitals []model.Hospital
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Hospital{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("huf ASC").
		Offset(offset).Limit(limit).
		Find(&hospitals).Error
	return hospitals, total, err
}

func (r *hospitalRepo) Update(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

func (r *hospitalRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Hospital{}).Error
}
