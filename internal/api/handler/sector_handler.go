package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// SectorHandler cadastro de setores/serviços hospitalares
type SectorHandler struct {
	sectorSvc service.SectorService
}

// NewSectorHandler cria o SectorHandler
func NewSectorHandler(sectorSvc service.SectorService) *SectorHandler {
	return &SectorHandler{sectorSvc: sectorSvc}
}

// ListSectors GET /api/v1/sectors?hospital_id=
func (h *SectorHandler) ListSectors(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "parâmetros de paginação inválidos")
		return
	}

	sectors, total, err := h.sectorSvc.List(c.Request.Context(), c.Query("hospital_id"), &page)
	if err != nil {
		response.InternalError(c, "falha ao listar setores")
		return
	}

	response.OKPage(c, sectors, response.NewPagination(page.GetPage(), page.GetPageSize(), total))
}

// GetSector GET /api/v1/sectors/:id
func (h *SectorHandler) GetSector(c *gin.Context) {
	sector, err := h.sectorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSectorError(c, err)
		return
	}
	response.OK(c, sector)
}

// CreateSector POST /api/v1/sectors
func (h *SectorHandler) CreateSector(c *gin.Context) {
	var req dto.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do setor inválidos")
		return
	}

	sector, err := h.sectorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSectorError(c, err)
		return
	}
	response.Created(c, sector)
}

// UpdateSector PUT /api/v1/sectors/:id
func (h *SectorHandler) UpdateSector(c *gin.Context) {
	var req dto.UpdateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados do setor inválidos")
		return
	}

	sector, err := h.sectorSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleSectorError(c, err)
		return
	}
	response.OK(c, sector)
}

// DeleteSector DELETE /api/v1/sectors/:id
func (h *SectorHandler) DeleteSector(c *gin.Context) {
	if err := h.sectorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleSectorError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *SectorHandler) handleSectorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrHospitalNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha na operação de setor")
	}
}
