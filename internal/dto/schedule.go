package dto

import "sobreaviso/backend/internal/roster"

// ── Escalas ──

// EntryPayload entrada (dia, faixa, pessoa) como chega da API.
// Identificadores podem vir como número ou texto.
type EntryPayload struct {
	Day      int    `json:"day"          binding:"required,min=1,max=31"`
	SlotID   FlexID `json:"time_slot_id" binding:"required"`
	PersonID FlexID `json:"person_id"    binding:"required"`
}

// ToEntry converte para a entrada canônica do núcleo
func (e EntryPayload) ToEntry() roster.Entry {
	return roster.Entry{
		Day:      e.Day,
		SlotID:   roster.NormalizeID(e.SlotID.String()),
		PersonID: roster.NormalizeID(e.PersonID.String()),
	}
}

// CreateScheduleRequest criação de escala mensal
type CreateScheduleRequest struct {
	Month            string         `json:"month"   binding:"required,len=7"`
	TeamID           FlexID         `json:"team_id" binding:"required"`
	SEIProcess       string         `json:"sei_process" binding:"omitempty,max=64"`
	HolidayDays      []int          `json:"holiday_days" binding:"omitempty,dive,min=1,max=31"`
	VisiblePeopleIDs []FlexID       `json:"visible_people_ids"`
	Entries          []EntryPayload `json:"entries"`
}

// UpdateScheduleRequest substituição integral da escala
type UpdateScheduleRequest struct {
	SEIProcess       *string        `json:"sei_process" binding:"omitempty,max=64"`
	HolidayDays      []int          `json:"holiday_days" binding:"omitempty,dive,min=1,max=31"`
	VisiblePeopleIDs []FlexID       `json:"visible_people_ids"`
	Entries          []EntryPayload `json:"entries"`
	Version          int            `json:"version" binding:"required,min=1"`
}

// AssignmentRequest atribuição de uma única célula. PersonID nulo ou
// vazio remove a atribuição.
type AssignmentRequest struct {
	Day      int     `json:"day"          binding:"required,min=1,max=31"`
	SlotID   FlexID  `json:"time_slot_id" binding:"required"`
	PersonID *FlexID `json:"person_id"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// VisiblePeopleRequest troca do conjunto de linhas visíveis; entradas
// de pessoas removidas são podadas
type VisiblePeopleRequest struct {
	PersonIDs []FlexID `json:"person_ids" binding:"required"`
	Version   int      `json:"version"    binding:"required,min=1"`
}

// AutoFillRequest geração automática pela escadinha
type AutoFillRequest struct {
	StartPersonID FlexID `json:"start_person_id"`
	HolidayDays   []int  `json:"holiday_days" binding:"omitempty,dive,min=1,max=31"`
	Version       int    `json:"version" binding:"required,min=1"`
}

// ScheduleListRequest filtros de listagem de escalas
type ScheduleListRequest struct {
	TeamID string `form:"team_id" binding:"omitempty,uuid"`
	Month  string `form:"month"   binding:"omitempty,len=7"`
	PaginationRequest
}

// ScheduleResponse escala persistida
type ScheduleResponse struct {
	ID          string           `json:"id"`
	Month       string           `json:"month"`
	TeamID      string           `json:"team_id"`
	Team        *TeamBrief       `json:"team,omitempty"`
	SEIProcess  string           `json:"sei_process,omitempty"`
	HolidayDays []int            `json:"holiday_days"`
	People      []PersonBrief    `json:"people"`
	Entries     []roster.Entry   `json:"entries"`
	Summary     *ScheduleSummary `json:"summary,omitempty"`
	Version     int              `json:"version"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ScheduleSummary agregados da escala: pessoas distintas com plantão,
// quantidade de plantões e horas totais
type ScheduleSummary struct {
	People     int     `json:"people"`
	Shifts     int     `json:"shifts"`
	TotalHours float64 `json:"total_hours"`
	HoursLabel string  `json:"hours_label"`
}
