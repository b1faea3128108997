package repository

import (
	"context"

	"gorm.io/gorm"

	pkgerrors "sobreaviso/backend/pkg/errors"

	"sobreaviso/backend/internal/model"
)

// ScheduleRepository acesso a dados de escalas mensais. As escritas que
// substituem entradas e linhas visíveis rodam em transação e respeitam
// o bloqueio otimista por versão.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule, peopleIDs []string, entries []model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	GetByTeamMonth(ctx context.Context, teamID, month string) (*model.Schedule, error)
	List(ctx context.Context, teamID, month string, offset, limit int) ([]model.Schedule, int64, error)
	ListByMonth(ctx context.Context, month string) ([]model.Schedule, error)
	UpdateVersioned(ctx context.Context, schedule *model.Schedule, expectedVersion int, peopleIDs []string, entries []model.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo cria a implementação de ScheduleRepository
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule, peopleIDs []string, entries []model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		if err := replaceSchedulePeople(tx, schedule.ScheduleID, peopleIDs); err != nil {
			return err
		}
		return replaceScheduleEntries(tx, schedule.ScheduleID, entries)
	})
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Team.Sectors").
		Preload("Team.Sectors.Hospital").
		Preload("People", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_people.position ASC")
		}).
		Preload("People.Person").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_entries.day ASC")
		}).
		Where("id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) GetByTeamMonth(ctx context.Context, teamID, month string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND month = ?", teamID, month).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, teamID, month string, offset, limit int) ([]model.Schedule, int64, error) {
	var schedules []model.Schedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Schedule{})
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	if month != "" {
		db = db.Where("month = ?", month)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Team").
		Order("month DESC").
		Offset(offset).Limit(limit).
		Find(&schedules).Error
	return schedules, total, err
}

func (r *scheduleRepo) ListByMonth(ctx context.Context, month string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Team.Sectors").
		Preload("Team.Sectors.Hospital").
		Preload("People", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_people.position ASC")
		}).
		Preload("People.Person").
		Preload("Entries").
		Where("month = ?", month).
		Find(&schedules).Error
	return schedules, err
}

// UpdateVersioned grava a escala inteira condicionada à versão esperada.
// Versão divergente indica edição concorrente e devolve ErrOptimisticLock.
func (r *scheduleRepo) UpdateVersioned(ctx context.Context, schedule *model.Schedule, expectedVersion int, peopleIDs []string, entries []model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Schedule{}).
			Where("id = ? AND version = ?", schedule.ScheduleID, expectedVersion).
			Updates(map[string]interface{}{
				"sei_process":  schedule.SEIProcess,
				"holiday_days": schedule.HolidayDays,
				"version":      gorm.Expr("version + 1"),
				"updated_at":   gorm.Expr("NOW()"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return pkgerrors.ErrOptimisticLock
		}
		if err := replaceSchedulePeople(tx, schedule.ScheduleID, peopleIDs); err != nil {
			return err
		}
		return replaceScheduleEntries(tx, schedule.ScheduleID, entries)
	})
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM schedule_entries WHERE schedule_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM schedule_people WHERE schedule_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Schedule{}).Error
	})
}

func replaceSchedulePeople(tx *gorm.DB, scheduleID string, peopleIDs []string) error {
	if err := tx.Exec("DELETE FROM schedule_people WHERE schedule_id = ?", scheduleID).Error; err != nil {
		return err
	}
	for i, pid := range peopleIDs {
		if err := tx.Exec(
			"INSERT INTO schedule_people (schedule_id, person_id, position) VALUES (?, ?, ?)",
			scheduleID, pid, i,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceScheduleEntries(tx *gorm.DB, scheduleID string, entries []model.ScheduleEntry) error {
	if err := tx.Exec("DELETE FROM schedule_entries WHERE schedule_id = ?", scheduleID).Error; err != nil {
		return err
	}
	for i := range entries {
		entries[i].ScheduleID = scheduleID
		entries[i].EntryID = ""
	}
	if len(entries) == 0 {
		return nil
	}
	return tx.Create(&entries).Error
}
