package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// HolidayHandler extração de feriados a partir de calendários ICS
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler cria o HolidayHandler
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// Preview POST /api/v1/holidays/preview
// Recebe o conteúdo ICS bruto ou a URL do calendário e devolve os dias
// de feriado do mês pedido, sem persistir nada.
func (h *HolidayHandler) Preview(c *gin.Context) {
	var req dto.HolidayPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do calendário inválidos")
		return
	}

	preview, err := h.holidaySvc.Preview(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMonth),
			errors.Is(err, service.ErrInvalidICS),
			errors.Is(err, service.ErrMissingICSSource),
			errors.Is(err, service.ErrICSFetch):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "falha ao processar o calendário de feriados")
		}
		return
	}
	response.OK(c, preview)
}
