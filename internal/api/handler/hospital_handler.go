package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// HospitalHandler cadastro de hospitais (HUF e unidade organizacional)
type HospitalHandler struct {
	hospitalSvc service.HospitalService
}

// NewHospitalHandler cria o HospitalHandler
func NewHospitalHandler(hospitalSvc service.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitalSvc: hospitalSvc}
}

// ListHospitals GET /api/v1/hospitals
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "parâmetros de paginação inválidos")
		return
	}

	hospitals, total, err := h.hospitalSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c, "falha ao listar hospitais")
		return
	}

	response.OKPage(c, hospitals, response.NewPagination(page.GetPage(), page.GetPageSize(), total))
}

// GetHospital GET /api/v1/hospitals/:id
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospital, err := h.hospitalSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}
	response.OK(c, hospital)
}

// CreateHospital POST /api/v1/hospitals
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req dto.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do hospital inválidos")
		return
	}

	hospital, err := h.hospitalSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}
	response.Created(c, hospital)
}

// UpdateHospital PUT /api/v1/hospitals/:id
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var req dto.UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do hospital inválidos")
		return
	}

	hospital, err := h.hospitalSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}
	response.OK(c, hospital)
}

// DeleteHospital DELETE /api/v1/hospitals/:id
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	if err := h.hospitalSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleHospitalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *HospitalHandler) handleHospitalError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrHospitalNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, "falha na operação de hospital")
}
