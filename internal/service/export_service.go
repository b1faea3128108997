package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/internal/roster"
)

// ExportFile arquivo pronto para download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// exportHeader bloco de cabeçalho impresso nos arquivos exportados
type exportHeader struct {
	Title      string
	TeamName   string
	MonthLabel string
	HUF        string
	UO         string
	SEIProcess string
}

// ExportService gera os artefatos de exportação (PDF e planilha) a
// partir do estado já persistido da escala
type ExportService interface {
	CalendarPDF(ctx context.Context, scheduleID string, filterPersonIDs []string) (*ExportFile, error)
	CalendarXLSX(ctx context.Context, scheduleID string, filterPersonIDs []string) (*ExportFile, error)
	MatrixPDF(ctx context.Context, scheduleID string) (*ExportFile, error)
	MatrixXLSX(ctx context.Context, scheduleID string) (*ExportFile, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria a implementação de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── Carregamento ──────────────────────

func (s *exportService) loadSchedule(ctx context.Context, id string) (*model.Schedule, exportHeader, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exportHeader{}, ErrScheduleNotFound
		}
		s.logger.Error("falha ao buscar escala para exportação", zap.String("id", id), zap.Error(err))
		return nil, exportHeader{}, err
	}

	year, month, err := roster.ParseMonth(schedule.Month)
	if err != nil {
		return nil, exportHeader{}, ErrInvalidMonth
	}

	header := exportHeader{
		Title:      "Escala de Sobreaviso",
		MonthLabel: roster.MonthLabelPT(year, month),
		SEIProcess: schedule.SEIProcess,
	}

	// HUF/UO chegam pela derivação equipe → setores → hospital
	team, err := s.repo.Team.GetByID(ctx, schedule.TeamID)
	if err == nil {
		header.TeamName = team.Name
		if len(team.Sectors) > 0 && team.Sectors[0].Hospital != nil {
			header.HUF = team.Sectors[0].Hospital.HUF
			header.UO = team.Sectors[0].Hospital.UO
		}
	} else if schedule.Team != nil {
		header.TeamName = schedule.Team.Name
	}

	return schedule, header, nil
}

// exportFilename monta o nome do arquivo no padrão
// escala-<equipe>-<mês>-<forma>.<extensão>
func exportFilename(teamName, month, shape, ext string) string {
	return fmt.Sprintf("escala-%s-%s-%s.%s", slugify(teamName), month, shape, ext)
}

var slugReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// slugify normaliza o nome da equipe para uso em nome de arquivo
func slugify(name string) string {
	lower := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	var b strings.Builder
	lastDash := true
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ────────────────────── Planilha: matriz ──────────────────────

func (s *exportService) MatrixXLSX(ctx context.Context, scheduleID string) (*ExportFile, error) {
	schedule, header, err := s.loadSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	_, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		return nil, err
	}
	matrix, err := roster.BuildMatrix(schedule.Month, entriesFromModel(schedule.Entries), visiblePersonInfos(schedule), slots, []int(schedule.HolidayDays))
	if err != nil {
		return nil, err
	}

	data, err := renderMatrixXLSX(matrix, header)
	if err != nil {
		s.logger.Error("falha ao gerar planilha da matriz", zap.String("id", scheduleID), zap.Error(err))
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename(header.TeamName, schedule.Month, "tabela", "xlsx"),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

func renderMatrixXLSX(matrix *roster.Matrix, header exportHeader) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Escala"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	shadedHeadStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"CBD5E1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	plainStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	leftStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	// um estilo por código, com as cores da paleta compartilhada
	codeStyles := make(map[string]int)
	for _, item := range matrix.Legend {
		id, serr := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: item.ColorText},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{item.ColorFill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		})
		if serr != nil {
			return nil, serr
		}
		codeStyles[item.Code] = id
	}

	leadCols := 3
	totalCols := leadCols + len(matrix.Days) + 2

	// bloco de cabeçalho
	if err := f.MergeCell(sheet, cell(0, 1), cell(totalCols-1, 1)); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, cell(0, 1), header.Title)
	f.SetCellStyle(sheet, cell(0, 1), cell(totalCols-1, 1), titleStyle)

	if err := f.MergeCell(sheet, cell(0, 2), cell(totalCols-1, 2)); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, cell(0, 2), headerLine(header))

	// duas linhas de cabeçalho da grade: número do dia e inicial
	const dayRow, initialRow = 4, 5
	f.SetCellValue(sheet, cell(0, dayRow), "Matrícula")
	f.SetCellValue(sheet, cell(1, dayRow), "Nome")
	f.SetCellValue(sheet, cell(2, dayRow), "Cargo")
	for c := 0; c < leadCols; c++ {
		f.MergeCell(sheet, cell(c, dayRow), cell(c, initialRow))
		f.SetCellStyle(sheet, cell(c, dayRow), cell(c, initialRow), headStyle)
	}
	for i, day := range matrix.Days {
		col := leadCols + i
		style := headStyle
		if day.Weekend || day.Holiday {
			style = shadedHeadStyle
		}
		f.SetCellValue(sheet, cell(col, dayRow), day.Day)
		f.SetCellValue(sheet, cell(col, initialRow), day.Initial)
		f.SetCellStyle(sheet, cell(col, dayRow), cell(col, initialRow), style)
	}
	pCol := leadCols + len(matrix.Days)
	hCol := pCol + 1
	f.SetCellValue(sheet, cell(pCol, dayRow), "P")
	f.SetCellValue(sheet, cell(hCol, dayRow), "H")
	f.MergeCell(sheet, cell(pCol, dayRow), cell(pCol, initialRow))
	f.MergeCell(sheet, cell(hCol, dayRow), cell(hCol, initialRow))
	f.SetCellStyle(sheet, cell(pCol, dayRow), cell(hCol, initialRow), headStyle)

	// linhas de pessoas
	row := initialRow + 1
	for _, r := range matrix.Rows {
		f.SetCellValue(sheet, cell(0, row), r.Matricula)
		f.SetCellValue(sheet, cell(1, row), r.Name)
		f.SetCellValue(sheet, cell(2, row), r.Cargo)
		f.SetCellStyle(sheet, cell(0, row), cell(0, row), plainStyle)
		f.SetCellStyle(sheet, cell(1, row), cell(2, row), leftStyle)
		for i, c := range r.Cells {
			col := leadCols + i
			target := cell(col, row)
			if c.Code != "" {
				f.SetCellValue(sheet, target, c.Code)
				if id, ok := codeStyles[c.Code]; ok {
					f.SetCellStyle(sheet, target, target, id)
					continue
				}
			}
			f.SetCellStyle(sheet, target, target, plainStyle)
		}
		f.SetCellValue(sheet, cell(pCol, row), r.ShiftCount)
		f.SetCellValue(sheet, cell(hCol, row), r.HoursLabel)
		f.SetCellStyle(sheet, cell(pCol, row), cell(hCol, row), plainStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 32)
	f.SetColWidth(sheet, "C", "C", 20)
	first, _ := excelize.ColumnNumberToName(leadCols + 1)
	last, _ := excelize.ColumnNumberToName(hCol + 1)
	f.SetColWidth(sheet, first, last, 4.5)

	if err := renderLegendSheet(f, matrix.Legend); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderLegendSheet segunda aba com código, descrição e cor de cada
// faixa presente na escala
func renderLegendSheet(f *excelize.File, legend []roster.LegendItem) error {
	const sheet = "Legenda"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Código")
	f.SetCellValue(sheet, "B1", "Descrição")
	f.SetCellValue(sheet, "C1", "Cor")
	f.SetCellStyle(sheet, "A1", "C1", headStyle)

	for i, item := range legend {
		row := i + 2
		codeStyle, serr := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: item.ColorText},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{item.ColorFill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if serr != nil {
			return serr
		}
		f.SetCellValue(sheet, cell(0, row), item.Code)
		f.SetCellStyle(sheet, cell(0, row), cell(0, row), codeStyle)
		f.SetCellValue(sheet, cell(1, row), item.Label)
		f.SetCellValue(sheet, cell(2, row), "#"+item.ColorFill)
	}
	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 36)
	f.SetColWidth(sheet, "C", "C", 12)
	return nil
}

// ────────────────────── Planilha: calendário ──────────────────────

func (s *exportService) CalendarXLSX(ctx context.Context, scheduleID string, filterPersonIDs []string) (*ExportFile, error) {
	schedule, header, err := s.loadSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	people, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		return nil, err
	}
	if err := validateFilterPeople(filterPersonIDs, people); err != nil {
		return nil, err
	}
	cal, err := roster.BuildCalendar(schedule.Month, entriesFromModel(schedule.Entries), people, slots, []int(schedule.HolidayDays), filterPersonIDs)
	if err != nil {
		return nil, err
	}

	data, err := renderCalendarXLSX(cal, header)
	if err != nil {
		s.logger.Error("falha ao gerar planilha do calendário", zap.String("id", scheduleID), zap.Error(err))
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename(header.TeamName, schedule.Month, "calendario", "xlsx"),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

func renderCalendarXLSX(cal *roster.CalendarMonth, header exportHeader) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Calendário"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	dayStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	shadedDayStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"F1F5F9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, "A1", header.Title)
	f.SetCellStyle(sheet, "A1", "G1", titleStyle)
	if err := f.MergeCell(sheet, "A2", "G2"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, "A2", headerLine(header))

	// semana começa na segunda-feira
	initials := []string{"S", "T", "Q", "Q", "S", "S", "D"}
	const weekHeaderRow = 4
	for c, ini := range initials {
		f.SetCellValue(sheet, cell(c, weekHeaderRow), ini)
		f.SetCellStyle(sheet, cell(c, weekHeaderRow), cell(c, weekHeaderRow), headStyle)
	}

	row := weekHeaderRow + 1
	col := cal.LeadingBlanks
	for _, day := range cal.Days {
		var b strings.Builder
		fmt.Fprintf(&b, "%d", day.Day)
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "\n%s %s", e.SlotCode, e.FirstName)
		}
		target := cell(col, row)
		f.SetCellValue(sheet, target, b.String())
		if day.Weekend || day.Holiday {
			f.SetCellStyle(sheet, target, target, shadedDayStyle)
		} else {
			f.SetCellStyle(sheet, target, target, dayStyle)
		}
		col++
		if col == 7 {
			col = 0
			f.SetRowHeight(sheet, row, 72)
			row++
		}
	}
	if col != 0 {
		f.SetRowHeight(sheet, row, 72)
	}
	f.SetColWidth(sheet, "A", "G", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── Auxiliares de planilha ──

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "94A3B8", Style: 1},
		{Type: "right", Color: "94A3B8", Style: 1},
		{Type: "top", Color: "94A3B8", Style: 1},
		{Type: "bottom", Color: "94A3B8", Style: 1},
	}
}

// cell converte (coluna 0-indexada, linha 1-indexada) em referência A1
func cell(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return fmt.Sprintf("%s%d", name, row)
}

func headerLine(header exportHeader) string {
	parts := []string{header.TeamName, header.MonthLabel}
	if header.HUF != "" {
		parts = append(parts, "HUF "+header.HUF)
	}
	if header.UO != "" {
		parts = append(parts, "UO "+header.UO)
	}
	if header.SEIProcess != "" {
		parts = append(parts, "SEI "+header.SEIProcess)
	}
	return strings.Join(parts, " · ")
}
