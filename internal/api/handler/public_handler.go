package handler

import (
	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// PublicHandler consulta pública de quem está de sobreaviso agora
type PublicHandler struct {
	onDutySvc service.OnDutyService
}

// NewPublicHandler cria o PublicHandler
func NewPublicHandler(onDutySvc service.OnDutyService) *PublicHandler {
	return &PublicHandler{onDutySvc: onDutySvc}
}

// Today GET /api/public/today?group_by=sector
// Não exige autenticação; o resultado é cacheado por data.
func (h *PublicHandler) Today(c *gin.Context) {
	resp, err := h.onDutySvc.Today(c.Request.Context(), c.Query("group_by"))
	if err != nil {
		response.InternalError(c, "falha ao consultar o sobreaviso de hoje")
		return
	}
	response.OK(c, resp)
}
