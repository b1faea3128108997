package handler

import "sobreaviso/backend/internal/service"

// Handler agregado de todos os handlers HTTP
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Person   *PersonHandler
	Team     *TeamHandler
	Sector   *SectorHandler
	Hospital *HospitalHandler
	TimeSlot *TimeSlotHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
	Public   *PublicHandler
	Holiday  *HolidayHandler
}

// NewHandler monta o agregado a partir dos serviços
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Person:   NewPersonHandler(svc.Person),
		Team:     NewTeamHandler(svc.Team),
		Sector:   NewSectorHandler(svc.Sector),
		Hospital: NewHospitalHandler(svc.Hospital),
		TimeSlot: NewTimeSlotHandler(svc.TimeSlot),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export, svc.Schedule),
		Public:   NewPublicHandler(svc.OnDuty),
		Holiday:  NewHolidayHandler(svc.Holiday),
	}
}
