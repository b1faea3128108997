package repository

import (
	"context"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
)

// PersonRepository acesso a dados de profissionais
type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	GetByID(ctx context.Context, id string) (*model.Person, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Person, error)
	List(ctx context.Context, teamID, search string, offset, limit int) ([]model.Person, int64, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Person, error)
	Update(ctx context.Context, person *model.Person) error
	Delete(ctx context.Context, id string) error
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo cria a implementação de PersonRepository
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) GetByID(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var people []model.Person
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&people).Error
	return people, err
}

func (r *personRepo) List(ctx context.Context, teamID, search string, offset, limit int) ([]model.Person, int64, error) {
	var people []model.Person
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Person{})
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	if search != "" {
		db = db.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Team").
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&people).Error
	return people, total, err
}

func (r *personRepo) ListByTeam(ctx context.Context, teamID string) ([]model.Person, error) {
	var people []model.Person
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("name ASC").
		Find(&people).Error
	return people, err
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *personRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Person{}).Error
}
