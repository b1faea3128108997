package repository

import (
	"context"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
)

// SectorRepository acesso a dados de setores
type SectorRepository interface {
	Create(ctx context.Context, sector *model.Sector) error
	GetByID(ctx context.Context, id string) (*model.Sector, error)
	List(ctx context.Context, hospitalID string, offset, limit int) ([]model.Sector, int64, error)
	Update(ctx context.Context, sector *model.Sector) error
	Delete(ctx context.Context, id string) error
}

type sectorRepo struct {
	db *gorm.DB
}

// NewSectorRepo cria a implementação de SectorRepository
func NewSectorRepo(db *gorm.DB) SectorRepository {
	return &sectorRepo{db: db}
}

func (r *sectorRepo) Create(ctx context.Context, sector *model.Sector) error {
	return r.db.WithContext(ctx).Create(sector).Error
}

func (r *sectorRepo) GetByID(ctx context.Context, id string) (*model.Sector, error) {
	var sector model.Sector
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Where("id = ?", id).
		First(&sector).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

func (r *sectorRepo) List(ctx context.Context, hospitalID string, offset, limit int) ([]model.Sector, int64, error) {
	var sectors []model.Sector
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Sector{})
	if hospitalID != "" {
		db = db.Where("hospital_id = ?", hospitalID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Hospital").
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&sectors).Error
	return sectors, total, err
}

func (r *sectorRepo) Update(ctx context.Context, sector *model.Sector) error {
	return r.db.WithContext(ctx).Save(sector).Error
}

func (r *sectorRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Sector{}).Error
}
