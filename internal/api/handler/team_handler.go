package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// TeamHandler gestão de equipes e seus vínculos com setores
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler cria o TeamHandler
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// ListTeams GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "parâmetros de paginação inválidos")
		return
	}

	teams, total, err := h.teamSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c, "falha ao listar equipes")
		return
	}

	response.OKPage(c, teams, response.NewPagination(page.GetPage(), page.GetPageSize(), total))
}

// GetTeam GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTeamError(c, err)
		return
	}
	response.OK(c, team)
}

// CreateTeam POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da equipe inválidos")
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTeamError(c, err)
		return
	}
	response.Created(c, team)
}

// UpdateTeam PUT /api/v1/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados da equipe inválidos")
		return
	}

	team, err := h.teamSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTeamError(c, err)
		return
	}
	response.OK(c, team)
}

// DeleteTeam DELETE /api/v1/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTeamError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *TeamHandler) handleTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSectorNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha na operação de equipe")
	}
}
