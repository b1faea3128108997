package repository

import (
	"context"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
)

// TeamRepository acesso a dados de equipes
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team, sectorIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Team, error)
	List(ctx context.Context, offset, limit int) ([]model.Team, int64, error)
	ListAll(ctx context.Context) ([]model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	ReplaceSectors(ctx context.Context, teamID string, sectorIDs []string) error
	Delete(ctx context.Context, id string) error
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo cria a implementação de TeamRepository
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) Create(ctx context.Context, team *model.Team, sectorIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return replaceTeamSectors(tx, team.TeamID, sectorIDs)
	})
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Sectors").
		Preload("Sectors.Hospital").
		Preload("People").
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) List(ctx context.Context, offset, limit int) ([]model.Team, int64, error) {
	var teams []model.Team
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Team{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Sectors").
		Preload("Sectors.Hospital").
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&teams).Error
	return teams, total, err
}

func (r *teamRepo) ListAll(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Preload("Sectors").
		Preload("Sectors.Hospital").
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepo) Update(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *teamRepo) ReplaceSectors(ctx context.Context, teamID string, sectorIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceTeamSectors(tx, teamID, sectorIDs)
	})
}

func (r *teamRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_sectors WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Team{}).Error
	})
}

func replaceTeamSectors(tx *gorm.DB, teamID string, sectorIDs []string) error {
	if err := tx.Exec("DELETE FROM team_sectors WHERE team_id = ?", teamID).Error; err != nil {
		return err
	}
	for _, sid := range sectorIDs {
		if err := tx.Exec(
			"INSERT INTO team_sectors (team_id, sector_id) VALUES (?, ?)",
			teamID, sid,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
