package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// PersonHandler cadastro de profissionais escaláveis
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler cria o PersonHandler
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// ListPeople GET /api/v1/people
// Admin da equipe só enxerga a própria equipe.
func (h *PersonHandler) ListPeople(c *gin.Context) {
	var req dto.PersonListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "parâmetros de busca inválidos")
		return
	}
	if !isAdmin(c) {
		req.TeamID = GetTeamID(c)
	}

	people, total, err := h.personSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "falha ao listar profissionais")
		return
	}

	response.OKPage(c, people, response.NewPagination(req.GetPage(), req.GetPageSize(), total))
}

// GetPerson GET /api/v1/people/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	person, err := h.personSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handlePersonError(c, err)
		return
	}
	response.OK(c, person)
}

// CreatePerson POST /api/v1/people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do profissional inválidos")
		return
	}

	person, err := h.personSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}
	response.Created(c, person)
}

// UpdatePerson PUT /api/v1/people/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do profissional inválidos")
		return
	}

	person, err := h.personSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}
	response.OK(c, person)
}

// DeletePerson DELETE /api/v1/people/:id
// Entradas antigas da pessoa permanecem e degradam para "N/A" na
// renderização.
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.personSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handlePersonError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *PersonHandler) handlePersonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTeamNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha na operação de profissional")
	}
}
