package repository

import "gorm.io/gorm"

// Repository agregado de todos os repositórios
type Repository struct {
	User     UserRepository
	Person   PersonRepository
	Team     TeamRepository
	Sector   SectorRepository
	Hospital HospitalRepository
	TimeSlot TimeSlotRepository
	Schedule ScheduleRepository
}

// NewRepository monta o agregado
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Person:   NewPersonRepo(db),
		Team:     NewTeamRepo(db),
		Sector:   NewSectorRepo(db),
		Hospital: NewHospitalRepo(db),
		TimeSlot: NewTimeSlotRepo(db),
		Schedule: NewScheduleRepo(db),
	}
}
