package service

import (
	"go.uber.org/zap"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/pkg/jwt"
	"sobreaviso/backend/pkg/redis"
)

// Service agregado de todos os serviços
type Service struct {
	Auth     AuthService
	User     UserService
	Person   PersonService
	Team     TeamService
	Sector   SectorService
	Hospital HospitalService
	TimeSlot TimeSlotService
	Schedule ScheduleService
	Export   ExportService
	OnDuty   OnDutyService
	Holiday  HolidayService
}

// NewService monta o agregado. O cliente Redis pode ser nil; os
// serviços que o usam degradam para operação sem cache.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, cache, logger),
		User:     NewUserService(repo, logger),
		Person:   NewPersonService(repo, logger),
		Team:     NewTeamService(repo, logger),
		Sector:   NewSectorService(repo, logger),
		Hospital: NewHospitalService(repo, logger),
		TimeSlot: NewTimeSlotService(repo, logger),
		Schedule: NewScheduleService(repo, logger),
		Export:   NewExportService(repo, logger),
		OnDuty:   NewOnDutyService(cfg, repo, cache, logger),
		Holiday:  NewHolidayService(logger),
	}
}
