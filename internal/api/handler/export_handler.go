package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// ExportHandler geração de arquivos PDF e XLSX das escalas
type ExportHandler struct {
	exportSvc   service.ExportService
	scheduleSvc service.ScheduleService
}

// NewExportHandler cria o ExportHandler
func NewExportHandler(exportSvc service.ExportService, scheduleSvc service.ScheduleService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, scheduleSvc: scheduleSvc}
}

// authorize aplica às exportações o mesmo recorte de equipe das demais
// rotas de escala
func (h *ExportHandler) authorize(c *gin.Context, id string) bool {
	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return false
	}
	if !isAdmin(c) && schedule.TeamID != GetTeamID(c) {
		response.Forbidden(c, "sem permissão para escalas de outra equipe")
		return false
	}
	return true
}

// CalendarPDF GET /api/v1/schedules/:id/export/calendar.pdf
func (h *ExportHandler) CalendarPDF(c *gin.Context) {
	if !h.authorize(c, c.Param("id")) {
		return
	}
	file, err := h.exportSvc.CalendarPDF(c.Request.Context(), c.Param("id"), c.QueryArray("person_id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.serve(c, file)
}

// CalendarXLSX GET /api/v1/schedules/:id/export/calendar.xlsx
func (h *ExportHandler) CalendarXLSX(c *gin.Context) {
	if !h.authorize(c, c.Param("id")) {
		return
	}
	file, err := h.exportSvc.CalendarXLSX(c.Request.Context(), c.Param("id"), c.QueryArray("person_id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.serve(c, file)
}

// MatrixPDF GET /api/v1/schedules/:id/export/matrix.pdf
func (h *ExportHandler) MatrixPDF(c *gin.Context) {
	if !h.authorize(c, c.Param("id")) {
		return
	}
	file, err := h.exportSvc.MatrixPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.serve(c, file)
}

// MatrixXLSX GET /api/v1/schedules/:id/export/matrix.xlsx
func (h *ExportHandler) MatrixXLSX(c *gin.Context) {
	if !h.authorize(c, c.Param("id")) {
		return
	}
	file, err := h.exportSvc.MatrixXLSX(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.serve(c, file)
}

func (h *ExportHandler) serve(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPersonNotInTeam):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "falha ao gerar o arquivo da escala")
	}
}
