package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/roster"
	"sobreaviso/backend/internal/service"
	pkgerrors "sobreaviso/backend/pkg/errors"
	"sobreaviso/backend/pkg/response"
)

// ScheduleHandler ciclo de vida das escalas mensais
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler cria o ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// loadScoped busca a escala e nega acesso de admin de equipe a escalas
// de outras equipes
func (h *ScheduleHandler) loadScoped(c *gin.Context, id string) (*dto.ScheduleResponse, bool) {
	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return nil, false
	}
	if !isAdmin(c) && schedule.TeamID != GetTeamID(c) {
		response.Forbidden(c, "sem permissão para escalas de outra equipe")
		return nil, false
	}
	return schedule, true
}

// ListSchedules GET /api/v1/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "parâmetros de busca inválidos")
		return
	}
	if !isAdmin(c) {
		req.TeamID = GetTeamID(c)
	}

	schedules, total, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "falha ao listar escalas")
		return
	}

	response.OKPage(c, schedules, response.NewPagination(req.GetPage(), req.GetPageSize(), total))
}

// GetSchedule GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedule, ok := h.loadScoped(c, c.Param("id"))
	if !ok {
		return
	}
	response.OK(c, schedule)
}

// CreateSchedule POST /api/v1/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da escala inválidos")
		return
	}
	if !isAdmin(c) && req.TeamID.String() != GetTeamID(c) {
		response.Forbidden(c, "sem permissão para criar escalas de outra equipe")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.Created(c, schedule)
}

// UpdateSchedule PUT /api/v1/schedules/:id
// Substituição integral condicionada à versão enviada.
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da escala inválidos")
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// DeleteSchedule DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.NoContent(c)
}

// SetAssignment PUT /api/v1/schedules/:id/assignment
// Atribui, substitui ou remove a ocupante de uma célula (dia, faixa).
func (h *ScheduleHandler) SetAssignment(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da atribuição inválidos")
		return
	}

	schedule, err := h.scheduleSvc.SetAssignment(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// SetVisiblePeople PUT /api/v1/schedules/:id/visible-people
func (h *ScheduleHandler) SetVisiblePeople(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	var req dto.VisiblePeopleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "lista de pessoas inválida")
		return
	}

	schedule, err := h.scheduleSvc.SetVisiblePeople(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// AutoFill POST /api/v1/schedules/:id/autofill
// Regenera o mês inteiro pela escadinha.
func (h *ScheduleHandler) AutoFill(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	var req dto.AutoFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da escadinha inválidos")
		return
	}

	schedule, err := h.scheduleSvc.AutoFill(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, schedule)
}

// GetCalendar GET /api/v1/schedules/:id/calendar?person_id=
func (h *ScheduleHandler) GetCalendar(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	calendar, err := h.scheduleSvc.Calendar(c.Request.Context(), id, c.QueryArray("person_id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, calendar)
}

// GetMatrix GET /api/v1/schedules/:id/matrix
func (h *ScheduleHandler) GetMatrix(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.loadScoped(c, id); !ok {
		return
	}

	matrix, err := h.scheduleSvc.Matrix(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, matrix)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDuplicateSchedule):
		response.Conflict(c, err.Error())
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, "a escala foi alterada por outro usuário, recarregue e tente de novo")
	case errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrEntryDayOutOfRange),
		errors.Is(err, service.ErrEntrySlotUnknown),
		errors.Is(err, service.ErrEntryPersonNotInTeam),
		errors.Is(err, service.ErrPersonNotInTeam),
		errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, roster.ErrAutoFillNoPeople),
		errors.Is(err, roster.ErrAutoFillNoNightSlot):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha na operação de escala")
	}
}
