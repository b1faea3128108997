package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// TimeSlotHandler catálogo de faixas horárias de sobreaviso
type TimeSlotHandler struct {
	timeSlotSvc service.TimeSlotService
}

// NewTimeSlotHandler cria o TimeSlotHandler
func NewTimeSlotHandler(timeSlotSvc service.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{timeSlotSvc: timeSlotSvc}
}

// ListTimeSlots GET /api/v1/time-slots
func (h *TimeSlotHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.timeSlotSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "falha ao listar faixas horárias")
		return
	}
	response.OK(c, gin.H{"items": slots})
}

// GetTimeSlot GET /api/v1/time-slots/:id
func (h *TimeSlotHandler) GetTimeSlot(c *gin.Context) {
	slot, err := h.timeSlotSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}
	response.OK(c, slot)
}

// CreateTimeSlot POST /api/v1/time-slots
func (h *TimeSlotHandler) CreateTimeSlot(c *gin.Context) {
	var req dto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da faixa horária inválidos")
		return
	}

	slot, err := h.timeSlotSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}
	response.Created(c, slot)
}

// UpdateTimeSlot PUT /api/v1/time-slots/:id
func (h *TimeSlotHandler) UpdateTimeSlot(c *gin.Context) {
	var req dto.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da faixa horária inválidos")
		return
	}

	slot, err := h.timeSlotSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}
	response.OK(c, slot)
}

// DeleteTimeSlot DELETE /api/v1/time-slots/:id
// Entradas de escalas antigas que referenciam a faixa degradam para
// "N/A" na renderização.
func (h *TimeSlotHandler) DeleteTimeSlot(c *gin.Context) {
	if err := h.timeSlotSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTimeSlotError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *TimeSlotHandler) handleTimeSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeSlotNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha na operação de faixa horária")
	}
}
